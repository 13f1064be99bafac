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

package position

import (
	"strings"

	"github.com/nmohanu/pyke/internal/assert"
	. "github.com/nmohanu/pyke/internal/types"
)

// Board holds the twelve piece bitboards of a chess position plus
// three derived bitboards: the occupancy of each color and the total
// occupancy. The derived boards always equal the OR of their
// constituents; every mutation updates piece, color and total board
// together.
type Board struct {
	pieces      [ColorLength][PtLength]Bitboard
	occupied    [ColorLength]Bitboard
	occupiedAll Bitboard
}

// PiecesBb returns the bitboard of all pieces of the given color and type
func (b *Board) PiecesBb(c Color, pt PieceType) Bitboard {
	return b.pieces[c][pt]
}

// OccupiedBb returns the bitboard of all occupied squares of the given color
func (b *Board) OccupiedBb(c Color) Bitboard {
	return b.occupied[c]
}

// OccupiedAll returns the bitboard of all occupied squares
func (b *Board) OccupiedAll() Bitboard {
	return b.occupiedAll
}

// IsOccupied returns whether the given square has a piece on it
func (b *Board) IsOccupied(sq Square) bool {
	return b.occupiedAll.Has(sq)
}

// PieceTypeOn returns the piece type of the given color on the square
// or PtNone.
func (b *Board) PieceTypeOn(c Color, sq Square) PieceType {
	mask := sq.Bb()
	for pt := King; pt < PtLength; pt++ {
		if b.pieces[c][pt]&mask != 0 {
			return pt
		}
	}
	return PtNone
}

// KingSquare returns the square of the king of the given color
func (b *Board) KingSquare(c Color) Square {
	return b.pieces[c][King].Lsb()
}

// put toggles the bit of the square in the piece board, the color
// occupancy and the total occupancy. The square must be empty.
func (b *Board) put(pt PieceType, c Color, sq Square) {
	if assert.DEBUG {
		assert.Assert(!b.occupiedAll.Has(sq), "put on occupied square %s", sq.String())
	}
	mask := sq.Bb()
	b.pieces[c][pt] ^= mask
	b.occupied[c] ^= mask
	b.occupiedAll ^= mask
}

// remove toggles the bit of the square in the piece board, the color
// occupancy and the total occupancy. The square must hold the piece.
func (b *Board) remove(pt PieceType, c Color, sq Square) {
	if assert.DEBUG {
		assert.Assert(b.pieces[c][pt].Has(sq), "remove of %s from empty square %s", pt.Str(), sq.String())
	}
	mask := sq.Bb()
	b.pieces[c][pt] ^= mask
	b.occupied[c] ^= mask
	b.occupiedAll ^= mask
}

// moveMask toggles a from|to mask in the piece board, the color
// occupancy and the total occupancy. Applying it twice restores the
// previous state bit for bit.
func (b *Board) moveMask(pt PieceType, c Color, fromTo Bitboard) {
	b.pieces[c][pt] ^= fromTo
	b.occupied[c] ^= fromTo
	b.occupiedAll ^= fromTo
}

// isConsistent verifies the board invariants: the derived occupancy
// boards equal the OR of the piece boards, the color occupancies are
// disjoint, no square holds two pieces and each side has exactly one
// king. Only used by assertions and tests.
func (b *Board) isConsistent() bool {
	all := BbZero
	for c := White; c <= Black; c++ {
		or := BbZero
		count := 0
		for pt := King; pt < PtLength; pt++ {
			or |= b.pieces[c][pt]
			count += b.pieces[c][pt].PopCount()
		}
		if or != b.occupied[c] || count != or.PopCount() {
			return false
		}
		if b.pieces[c][King].PopCount() != 1 {
			return false
		}
		all |= or
	}
	if b.occupied[White]&b.occupied[Black] != 0 {
		return false
	}
	return all == b.occupiedAll
}

// String returns a string representation of the board
// as a board of 8x8 squares with piece characters
func (b *Board) String() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8 + 1; r != Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r-1)
			piece := PieceNone
			if pt := b.PieceTypeOn(White, sq); pt != PtNone {
				piece = MakePiece(White, pt)
			} else if pt := b.PieceTypeOn(Black, sq); pt != PtNone {
				piece = MakePiece(Black, pt)
			}
			os.WriteString("| " + piece.String() + " ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}
