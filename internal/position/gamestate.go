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
	. "github.com/nmohanu/pyke/internal/types"
)

// GameState is the non board state of a position: the side to move,
// the castling rights and the en passant byte.
//
// The en passant byte caches everything needed to generate en passant
// moves without re-checking adjacency: bits 0..3 hold the file of the
// pawn which just double pushed, bit 7 is set iff an opposing pawn
// stands on the lower adjacent file, bit 6 iff on the higher adjacent
// file. A zero byte means no en passant is available.
type GameState struct {
	nextPlayer     Color
	castlingRights CastlingRights
	epFlag         uint8
}

// bits of the en passant byte
const (
	epLeftBit  uint8 = 0b1000_0000
	epRightBit uint8 = 0b0100_0000
	epFileMask uint8 = 0b0000_1111
)

// NextPlayer returns the side to move
func (gs *GameState) NextPlayer() Color {
	return gs.nextPlayer
}

// CastlingRights returns the current castling rights
func (gs *GameState) CastlingRights() CastlingRights {
	return gs.castlingRights
}

// CanCastle returns whether the right for the given castle variant
// is still available
func (gs *GameState) CanCastle(ci CastleIndex) bool {
	return gs.castlingRights.Has(ci.Right())
}

// RemoveCastlingRights clears the given rights
func (gs *GameState) RemoveCastlingRights(cr CastlingRights) {
	gs.castlingRights.Remove(cr)
}

// EpFlag returns the raw en passant byte
func (gs *GameState) EpFlag() uint8 {
	return gs.epFlag
}

// EpFile returns the file of the en passant capturable pawn.
// Only meaningful when EpFlag() != 0.
func (gs *GameState) EpFile() File {
	return File(gs.epFlag & epFileMask)
}

// EpFromSide returns whether an en passant capture from the given
// side (EpLeft or EpRight) is available
func (gs *GameState) EpFromSide(side int) bool {
	if side == EpLeft {
		return gs.epFlag&epLeftBit != 0
	}
	return gs.epFlag&epRightBit != 0
}

// setEnPassant records a double push to the given file which can be
// captured by an opposing pawn on the given adjacent side
func (gs *GameState) setEnPassant(f File, side int) {
	if side == EpLeft {
		gs.epFlag |= epLeftBit
	} else {
		gs.epFlag |= epRightBit
	}
	gs.epFlag |= uint8(f)
}

// clearEnPassant resets the en passant byte
func (gs *GameState) clearEnPassant() {
	gs.epFlag = 0
}
