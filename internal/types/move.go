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

package types

import "strings"

// MoveType is the class of a move which decides how make and
// unmake mutate the board
type MoveType uint8

// Constants for the move classes
const (
	Quiet MoveType = iota
	Capture
	Castle
	EnPassant
	PawnDouble
	Promotion
)

// Move is a 32bit unsigned int type encoding a chess move as a
// primitive data type.
//  BITMAP
//  |-------------------------------|
//  2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  -------------------------------------------------
//                                        1 1 1 1 1 1  to
//                            1 1 1 1 1 1              from
//                      1 1 1                          move type
//                1 1 1                                payload (promotion piece / castle index)
//          1 1 1                                      captured piece type
//    1 1 1                                            moving piece type
type Move uint32

const (
	// MoveNone is an empty non valid move
	MoveNone Move = 0
)

const (
	fromShift     = 6
	typeShift     = 12
	payloadShift  = 15
	capturedShift = 18
	pieceShift    = 21

	sqMask       Move = 0x3F
	typeMask     Move = 0x7 << typeShift
	payloadMask  Move = 0x7 << payloadShift
	capturedMask Move = 0x7 << capturedShift
	pieceMask    Move = 0x7 << pieceShift
)

// CreateMove returns an encoded Move instance. The payload holds the
// promotion piece type for Promotion moves and the castle index for
// Castle moves; it is zero otherwise. Captured is the piece type
// removed from the board by Capture and capturing Promotion moves.
func CreateMove(from Square, to Square, pt PieceType, mt MoveType, payload uint8, captured PieceType) Move {
	return Move(to) |
		Move(from)<<fromShift |
		Move(mt)<<typeShift |
		Move(payload)<<payloadShift |
		Move(captured)<<capturedShift |
		Move(pt)<<pieceShift
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square(m & sqMask)
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square((m >> fromShift) & sqMask)
}

// MoveType returns the class of the move
func (m Move) MoveType() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// PieceType returns the type of the moving piece
func (m Move) PieceType() PieceType {
	return PieceType((m & pieceMask) >> pieceShift)
}

// PromotionType returns the piece type the pawn promotes to.
// Only meaningful when the move type is Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m & payloadMask) >> payloadShift)
}

// CastleIdx returns the castle variant of a Castle move.
// Only meaningful when the move type is Castle.
func (m Move) CastleIdx() CastleIndex {
	return CastleIndex((m & payloadMask) >> payloadShift)
}

// Captured returns the piece type removed from the board by this
// move or PtNone. En passant always captures a pawn.
func (m Move) Captured() PieceType {
	return PieceType((m & capturedMask) >> capturedShift)
}

// String returns the move in coordinate notation, e.g. e2e4 or e7e8q.
// Castling is given as the king move (e1g1).
func (m Move) String() string {
	if m == MoveNone {
		return "--"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}
