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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqA1, SquareOf(FileA, Rank1))
	assert.Equal(t, SqH8, SquareOf(FileH, Rank8))
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqNone, SquareOf(FileNone, Rank1))
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, FileA, SqA8.FileOf())
	assert.Equal(t, Rank8, SqA8.RankOf())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare(""))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
	assert.Equal(t, SqF5, SqE4.To(Northeast))
	assert.Equal(t, SqD3, SqE4.To(Southwest))
	// off the board
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqE8.To(North))
	assert.Equal(t, SqNone, SqE1.To(South))
	assert.Equal(t, SqNone, SqA1.To(Southwest))
	assert.Equal(t, SqNone, SqH8.To(Northeast))
}

func TestPiece(t *testing.T) {
	assert.Equal(t, WhiteKnight, MakePiece(White, Knight))
	assert.Equal(t, BlackQueen, MakePiece(Black, Queen))
	assert.Equal(t, White, WhiteRook.ColorOf())
	assert.Equal(t, Black, BlackPawn.ColorOf())
	assert.Equal(t, Rook, WhiteRook.TypeOf())
	assert.Equal(t, Pawn, BlackPawn.TypeOf())
	assert.Equal(t, "N", WhiteKnight.String())
	assert.Equal(t, "q", BlackQueen.String())
	assert.Equal(t, WhiteKing, PieceFromChar("K"))
	assert.Equal(t, BlackBishop, PieceFromChar("b"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
}

func TestCastlingRights(t *testing.T) {
	cr := CastlingAny
	assert.True(t, cr.Has(CastlingWhiteOO))
	cr.Remove(CastlingWhite)
	assert.False(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	assert.True(t, cr.Has(CastlingBlackOO))
	assert.Equal(t, "kq", cr.String())
	cr.Remove(CastlingBlack)
	assert.Equal(t, "-", cr.String())
	assert.Equal(t, CastlingWhiteOO, CastleWhiteKing.Right())
	assert.Equal(t, CastlingBlackOOO, CastleBlackQueen.Right())
}
