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
	. "github.com/nmohanu/pyke/internal/types"
)

// magic holds all magic bitboard data relevant for a single square.
// The "fancy" approach gives each square an individually sized slice
// into one shared flat attack table.
// Taken from Stockfish
type magic struct {
	mask    Bitboard
	magic   Bitboard
	attacks []Bitboard
	shift   uint
}

// index calculates the index into the attack table
//   occ  &= mask
//   occ  *= magic
//   occ >>= shift
// https://www.chessprogramming.org/Magic_Bitboards
func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ = occ * m.magic
	occ = occ >> m.shift
	return uint(occ)
}

var (
	rookMagicTable   [rookTableSize]Bitboard
	bishopMagicTable [bishopTableSize]Bitboard
	rookMagics       [SqLength]magic
	bishopMagics     [SqLength]magic
)

// initMagics computes all rook or bishop attacks at startup. Magic
// bitboards are used to look up attacks of sliding pieces. As a
// reference see www.chessprogramming.org/Magic_Bitboards. In
// particular, here we use the so called "fancy" approach.
// Taken from Stockfish
func initMagics(table []Bitboard, magics *[SqLength]magic, directions *[4]Direction) {

	// Optimal PRNG seeds to pick the correct magics in the shortest time
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	epoch := [4096]int{}
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {

		// Given a square the mask is the bitboard of sliding attacks
		// computed on an empty board with the board edges removed. The
		// index must be big enough to contain all the attacks for each
		// possible subset of the mask, hence 2 to the power of the
		// number of 1s of the mask. From this the shift for the magic
		// multiply follows.
		m := &magics[sq]
		m.mask = relevantMask(directions, sq)
		m.shift = uint(64 - m.mask.PopCount())

		// Set the offset of the attacks slice for this square. Each
		// square has an individually sized slice of the shared table.
		if sq == SqA1 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		// Use the Carry-Rippler trick to enumerate all subsets of the
		// mask and store the corresponding sliding attack bitboard in
		// reference[].
		b := BbZero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		// Find a magic for the square picking up an (almost) random
		// number until it passes the verification test.
		for i := 0; i < size; {
			for m.magic = 0; ((m.magic * m.mask) >> 56).PopCount() < 6; {
				m.magic = Bitboard(rng.sparseRand())
			}

			// A good magic must map every possible occupancy to an
			// index that looks up the correct sliding attack. The
			// table for the square is built up as a side effect of
			// verifying the magic. The epoch trick avoids resetting
			// the attacks slice after every failed attempt.
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// prnG is a xorshift64star pseudo random number generator used to
// find magic numbers fast. Based on original code written and
// dedicated to the public domain by Sebastiano Vigna (2014).
// From Stockfish
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand delivers values with only 1/8th of their bits set on
// average which is what a good magic candidate looks like.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
