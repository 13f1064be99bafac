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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nmohanu/pyke/internal/types"
)

func TestTableSizes(t *testing.T) {
	// the flat tables hold one entry per subset of each square's
	// relevant mask
	rookSum, bishopSum := 0, 0
	for sq := SqA1; sq <= SqH8; sq++ {
		rookSum += 1 << RookMask(sq).PopCount()
		bishopSum += 1 << BishopMask(sq).PopCount()
	}
	assert.Equal(t, rookTableSize, rookSum)
	assert.Equal(t, bishopTableSize, bishopSum)
}

func TestRelevantMasks(t *testing.T) {
	// masks exclude the board edge and the square itself
	assert.Equal(t, 12, RookMask(SqA1).PopCount())
	assert.Equal(t, 10, RookMask(SqE4).PopCount())
	assert.Equal(t, 6, BishopMask(SqA1).PopCount())
	assert.Equal(t, 9, BishopMask(SqE4).PopCount())
	assert.False(t, RookMask(SqE4).Has(SqE4))
	assert.False(t, RookMask(SqE4).Has(SqE8))
	assert.True(t, RookMask(SqE4).Has(SqE7))
}

func TestAttacksEmptyBoard(t *testing.T) {
	assert.Equal(t, 14, RookAttacks(SqA1, BbZero).PopCount())
	assert.Equal(t, 14, RookAttacks(SqE4, BbZero).PopCount())
	assert.Equal(t, 7, BishopAttacks(SqA1, BbZero).PopCount())
	assert.Equal(t, 13, BishopAttacks(SqE4, BbZero).PopCount())
	assert.Equal(t, 27, QueenAttacks(SqE4, BbZero).PopCount())
}

func TestAttacksBlockers(t *testing.T) {
	// a blocker on e6 cuts the file, the blocker square is included
	occ := SqE6.Bb()
	attack := RookAttacks(SqE4, occ)
	assert.True(t, attack.Has(SqE5))
	assert.True(t, attack.Has(SqE6))
	assert.False(t, attack.Has(SqE7))
	assert.False(t, attack.Has(SqE8))

	occ = SqC6.Bb() | SqG2.Bb()
	attack = BishopAttacks(SqE4, occ)
	assert.True(t, attack.Has(SqC6))
	assert.False(t, attack.Has(SqB7))
	assert.True(t, attack.Has(SqG2))
	assert.False(t, attack.Has(SqH1))
	assert.True(t, attack.Has(SqH7))
	assert.True(t, attack.Has(SqB1))
	assert.False(t, attack.Has(SqA8))
}

// Both index forms and the ray walk reference must produce identical
// attack boards for every (square, occupancy) pair. The Carry-Rippler
// enumeration visits every subset of the relevant mask which decides
// the table entry; random full board occupancies cover the masking.
func TestIndexEquivalenceExhaustive(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		mask := RookMask(sq)
		b := BbZero
		for {
			reference := slidingAttack(&rookDirections, sq, b)
			assert.Equal(t, reference, rookMagics[sq].attacks[rookMagics[sq].index(b)])
			assert.Equal(t, reference, rookPextAttacks(sq, b))
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}

		mask = BishopMask(sq)
		b = BbZero
		for {
			reference := slidingAttack(&bishopDirections, sq, b)
			assert.Equal(t, reference, bishopMagics[sq].attacks[bishopMagics[sq].index(b)])
			assert.Equal(t, reference, bishopPextAttacks(sq, b))
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
	}
}

func TestIndexEquivalenceRandom(t *testing.T) {
	rng := newPrnG(123456789)
	for i := 0; i < 10_000; i++ {
		occ := Bitboard(rng.rand64())
		for sq := SqA1; sq <= SqH8; sq += 7 {
			assert.Equal(t, slidingAttack(&rookDirections, sq, occ), RookAttacks(sq, occ))
			assert.Equal(t, slidingAttack(&bishopDirections, sq, occ), BishopAttacks(sq, occ))
			assert.Equal(t, RookAttacks(sq, occ)|BishopAttacks(sq, occ), QueenAttacks(sq, occ))
		}
	}
}

func TestUsePextSwitch(t *testing.T) {
	occ := SqD4.Bb() | SqF6.Bb() | SqB2.Bb()
	magicResult := RookAttacks(SqD8, occ)
	UsePext(true)
	assert.Equal(t, magicResult, RookAttacks(SqD8, occ))
	UsePext(false)
}

func TestAttacksBbDispatch(t *testing.T) {
	occ := SqE6.Bb() | SqC4.Bb()
	assert.Equal(t, RookAttacks(SqE4, occ), AttacksBb(Rook, SqE4, occ))
	assert.Equal(t, RookAttacks(SqE4, occ), AttacksBb(QueenOrth, SqE4, occ))
	assert.Equal(t, BishopAttacks(SqE4, occ), AttacksBb(Bishop, SqE4, occ))
	assert.Equal(t, BishopAttacks(SqE4, occ), AttacksBb(QueenDiag, SqE4, occ))
	assert.Equal(t, QueenAttacks(SqE4, occ), AttacksBb(Queen, SqE4, occ))
	assert.Equal(t, GetPseudoAttacks(Knight, SqE4), AttacksBb(Knight, SqE4, occ))
	assert.Equal(t, GetPseudoAttacks(King, SqE4), AttacksBb(King, SqE4, occ))
}

func TestPextSoftware(t *testing.T) {
	assert.Equal(t, uint32(0), pext(BbZero, Rank2_Bb))
	assert.Equal(t, uint32(0xFF), pext(Rank2_Bb, Rank2_Bb))
	assert.Equal(t, uint32(0b101), pext(SqA2.Bb()|SqC2.Bb(), Rank2_Bb))
}
