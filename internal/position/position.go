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

// Package position represents a chess position as a set of bitboards
// with the corresponding game state and implements the make/unmake
// machinery which mutates a single position in place.
package position

import (
	"github.com/nmohanu/pyke/internal/attacks"
	. "github.com/nmohanu/pyke/internal/types"
)

// Position is the single mutable chess position of a perft run.
// The board bitboards and the game state are mutated in place by
// DoMove/UndoMove; there is no internal history, callers checkpoint
// the en passant byte and the castling rights on their own stack.
type Position struct {
	Board
	GameState
}

// which castling rights a move from or to this square destroys
var castlingRightMask [SqLength]CastlingRights

func init() {
	castlingRightMask[SqE1] = CastlingWhite
	castlingRightMask[SqA1] = CastlingWhiteOOO
	castlingRightMask[SqH1] = CastlingWhiteOO
	castlingRightMask[SqE8] = CastlingBlack
	castlingRightMask[SqA8] = CastlingBlackOOO
	castlingRightMask[SqH8] = CastlingBlackOO
}

// UpdateCastlingRights clears the castling rights the given move
// destroys: any king move clears both rights of the moving color,
// a rook move from or a capture onto a corner square clears the
// corresponding single right. This is computed at move time and not
// inside make because it depends on the squares involved; the perft
// recursion restores the previous rights from its own frame.
func (p *Position) UpdateCastlingRights(m Move) {
	if p.castlingRights == CastlingNone {
		return
	}
	p.castlingRights.Remove(castlingRightMask[m.From()] | castlingRightMask[m.To()])
}

// RestoreState resets the en passant byte and the castling rights to
// previously saved values. Used by the perft recursion after undoing
// a move.
func (p *Position) RestoreState(epFlag uint8, cr CastlingRights) {
	p.epFlag = epFlag
	p.castlingRights = cr
}

// IsAttacked determines if the given square is attacked by any piece
// of the given color. The occupancy to use for slider reach is given
// by the caller so the king can be lifted off the board before the
// test (sliders attack through the king's old square).
func (p *Position) IsAttacked(sq Square, by Color, occupied Bitboard) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.pieces[by][Pawn] != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.pieces[by][Knight] != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.pieces[by][King] != 0 {
		return true
	}
	if rq := p.pieces[by][Rook] | p.pieces[by][Queen]; rq != 0 &&
		attacks.RookAttacks(sq, occupied)&rq != 0 {
		return true
	}
	if bq := p.pieces[by][Bishop] | p.pieces[by][Queen]; bq != 0 &&
		attacks.BishopAttacks(sq, occupied)&bq != 0 {
		return true
	}
	return false
}

// HasCheck returns whether the side to move's king is attacked
func (p *Position) HasCheck() bool {
	us := p.nextPlayer
	return p.IsAttacked(p.KingSquare(us), us.Flip(), p.occupiedAll)
}

// String returns the board diagram plus the game state of the position
func (p *Position) String() string {
	s := p.Board.String()
	s += "next player: " + p.nextPlayer.Str()
	s += "  castling rights: " + p.castlingRights.String()
	s += "  ep square: " + p.EpSquare().String() + "\n"
	return s
}

// EpSquare returns the square an en passant capture would land on or
// SqNone when no en passant is available.
func (p *Position) EpSquare() Square {
	if p.epFlag == 0 {
		return SqNone
	}
	if p.nextPlayer == White {
		return SquareOf(p.EpFile(), Rank6)
	}
	return SquareOf(p.EpFile(), Rank3)
}
