/*
 * Pyke - bitboard move generator and PERFT counter in Go
 *
 * MIT License
 *
 * Copyright (c) 2024-2025 nmohanu
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package attacks

import (
	"math/bits"

	. "github.com/nmohanu/pyke/internal/types"
)

// The PEXT index packs the occupancy bits under the relevant mask
// into a dense integer: index = pext(occ, mask). A per square offset
// into one shared flat table then gives the attack bitboard. GO has
// no portable access to the BMI2 PEXT instruction so the extraction
// is done in software; the table layout is identical to the hardware
// variant (rooks 102400 entries, bishops 5248).

var (
	rookPextTable     [rookTableSize]Bitboard
	bishopPextTable   [bishopTableSize]Bitboard
	rookPextOffsets   [SqLength]uint32
	bishopPextOffsets [SqLength]uint32
	rookPextMasks     [SqLength]Bitboard
	bishopPextMasks   [SqLength]Bitboard
)

// pext extracts the bits of b selected by mask into the low bits of
// the result, preserving their order (software PEXT).
func pext(b Bitboard, mask Bitboard) uint32 {
	var res, bit uint64 = 0, 1
	for m := uint64(mask); m != 0; m &= m - 1 {
		if uint64(b)&m&-m != 0 {
			res |= bit
		}
		bit <<= 1
	}
	return uint32(res)
}

func rookPextAttacks(sq Square, occupied Bitboard) Bitboard {
	return rookPextTable[rookPextOffsets[sq]+pext(occupied, rookPextMasks[sq])]
}

func bishopPextAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopPextTable[bishopPextOffsets[sq]+pext(occupied, bishopPextMasks[sq])]
}

// initPext fills the flat attack table for one slider kind. The
// entries of each square start at offset[sq] and are indexed by the
// extracted occupancy; the Carry-Rippler enumeration visits every
// subset of the mask exactly once.
func initPext(table []Bitboard, offsets *[SqLength]uint32, masks *[SqLength]Bitboard, directions *[4]Direction) {
	offset := uint32(0)
	for sq := SqA1; sq <= SqH8; sq++ {
		mask := relevantMask(directions, sq)
		masks[sq] = mask
		offsets[sq] = offset

		b := BbZero
		for {
			table[offset+pext(b, mask)] = slidingAttack(directions, sq, b)
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
		offset += 1 << uint32(bits.OnesCount64(uint64(mask)))
	}
}
