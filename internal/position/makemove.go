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

// Make and unmake for every move class. Each pair satisfies
// undo(do(pos, m)) == pos bit for bit on the board bitboards.
//
// DoMove mutates only the board bitboards, the side to move and the
// en passant byte (cleared on every move, set again by a pawn double
// push). It does not save any state: the caller checkpoints the en
// passant byte and the castling rights by value before descending and
// restores them via RestoreState after UndoMove.

// DoMove applies the given move to the position
func (p *Position) DoMove(m Move) {
	us := p.nextPlayer
	p.clearEnPassant()

	switch m.MoveType() {
	case Quiet:
		p.moveMask(m.PieceType(), us, m.From().Bb()|m.To().Bb())
	case Capture:
		p.remove(m.Captured(), us.Flip(), m.To())
		p.moveMask(m.PieceType(), us, m.From().Bb()|m.To().Bb())
	case Castle:
		ci := m.CastleIdx()
		p.moveMask(King, us, CastleKingFrom[ci].Bb()|CastleKingTo[ci].Bb())
		p.moveMask(Rook, us, CastleRookFrom[ci].Bb()|CastleRookTo[ci].Bb())
	case EnPassant:
		p.moveMask(Pawn, us, m.From().Bb()|m.To().Bb())
		p.remove(Pawn, us.Flip(), epCapturedSquare(us, m.To()))
	case PawnDouble:
		p.moveMask(Pawn, us, m.From().Bb()|m.To().Bb())
		p.setDoublePushEp(us, m.To())
	case Promotion:
		if m.Captured() != PtNone {
			p.remove(m.Captured(), us.Flip(), m.To())
		}
		p.remove(Pawn, us, m.From())
		p.put(m.PromotionType(), us, m.To())
	}

	p.nextPlayer = us.Flip()
}

// UndoMove reverses the given move. The board is restored bit for
// bit; the en passant byte and castling rights must be restored by
// the caller via RestoreState.
func (p *Position) UndoMove(m Move) {
	us := p.nextPlayer.Flip()
	p.nextPlayer = us

	switch m.MoveType() {
	case Quiet:
		p.moveMask(m.PieceType(), us, m.From().Bb()|m.To().Bb())
	case Capture:
		p.moveMask(m.PieceType(), us, m.From().Bb()|m.To().Bb())
		p.put(m.Captured(), us.Flip(), m.To())
	case Castle:
		ci := m.CastleIdx()
		p.moveMask(King, us, CastleKingFrom[ci].Bb()|CastleKingTo[ci].Bb())
		p.moveMask(Rook, us, CastleRookFrom[ci].Bb()|CastleRookTo[ci].Bb())
	case EnPassant:
		p.moveMask(Pawn, us, m.From().Bb()|m.To().Bb())
		p.put(Pawn, us.Flip(), epCapturedSquare(us, m.To()))
	case PawnDouble:
		p.moveMask(Pawn, us, m.From().Bb()|m.To().Bb())
	case Promotion:
		p.remove(m.PromotionType(), us, m.To())
		p.put(Pawn, us, m.From())
		if m.Captured() != PtNone {
			p.put(m.Captured(), us.Flip(), m.To())
		}
	}
}

// epCapturedSquare returns the square of the pawn captured en
// passant: one rank behind the capture target seen from the mover.
// Only called for generated en passant moves, so the arithmetic can
// never leave the board.
func epCapturedSquare(us Color, to Square) Square {
	return Square(int(to) - 8*us.MoveDirection())
}

// setDoublePushEp records the en passant chance created by a double
// push to the given square. The flag is only set when an opposing
// pawn stands directly on an adjacent file, so generation can rely
// on the byte without re-checking the board.
func (p *Position) setDoublePushEp(us Color, to Square) {
	oppPawns := p.pieces[us.Flip()][Pawn]
	f := to.FileOf()
	if f > FileA && oppPawns.Has(to-1) {
		p.setEnPassant(f, EpLeft)
	}
	if f < FileH && oppPawns.Has(to+1) {
		p.setEnPassant(f, EpRight)
	}
}
