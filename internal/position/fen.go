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
	"errors"
	"fmt"
	"strings"

	. "github.com/nmohanu/pyke/internal/types"
)

// StartFen is the FEN string of the standard chess start position
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition creates a new position with the standard chess start
// position
func NewPosition() *Position {
	p, _ := NewPositionFen(StartFen)
	return p
}

// NewPositionFen creates a new position with the given FEN string.
// Returns an error for malformed input.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// setupBoard sets up a board based on a given fen. Returns an error
// when the fen is malformed.
func (p *Position) setupBoard(fen string) error {

	// fen string has 6 parts - we only need the first 4 and tolerate
	// missing counters
	fenParts := strings.Fields(fen)
	if len(fenParts) < 4 {
		return errors.New("fen must have at least 4 parts: " + fen)
	}

	// piece placement - fen starts at a8 and runs to h1
	file := FileA
	rank := Rank8
	for _, c := range fenParts[0] {
		switch {
		case c == '/':
			if file != FileNone {
				return fmt.Errorf("fen rank %s has too few squares: %s", rank.String(), fen)
			}
			if rank == Rank1 {
				return errors.New("fen has too many ranks: " + fen)
			}
			file = FileA
			rank--
		case c >= '1' && c <= '8':
			file += File(c - '0')
			if file > FileNone {
				return errors.New("fen rank overflows the board: " + fen)
			}
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("fen contains invalid piece %q: %s", c, fen)
			}
			if file == FileNone {
				return errors.New("fen rank overflows the board: " + fen)
			}
			p.put(piece.TypeOf(), piece.ColorOf(), SquareOf(file, rank))
			file++
		}
	}
	if rank != Rank1 || file != FileNone {
		return errors.New("fen does not describe 64 squares: " + fen)
	}
	if p.pieces[White][King].PopCount() != 1 || p.pieces[Black][King].PopCount() != 1 {
		return errors.New("fen must have exactly one king per side: " + fen)
	}

	// side to move
	switch fenParts[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
	default:
		return errors.New("fen side to move must be w or b: " + fen)
	}

	// castling rights
	if fenParts[2] != "-" {
		for _, c := range fenParts[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			default:
				return fmt.Errorf("fen contains invalid castling right %q: %s", c, fen)
			}
		}
	}

	// en passant - the fen gives the capture target square. Convert
	// to the compact byte: file plus a bit for each adjacent file
	// actually holding a capturing pawn.
	if fenParts[3] != "-" {
		epTarget := MakeSquare(fenParts[3])
		if epTarget == SqNone {
			return errors.New("fen contains invalid en passant square: " + fen)
		}
		f := epTarget.FileOf()
		var pusherRank Rank
		switch {
		case p.nextPlayer == White && epTarget.RankOf() == Rank6:
			pusherRank = Rank5
		case p.nextPlayer == Black && epTarget.RankOf() == Rank3:
			pusherRank = Rank4
		default:
			return errors.New("fen en passant square does not match side to move: " + fen)
		}
		myPawns := p.pieces[p.nextPlayer][Pawn]
		if f > FileA && myPawns.Has(SquareOf(f-1, pusherRank)) {
			p.setEnPassant(f, EpLeft)
		}
		if f < FileH && myPawns.Has(SquareOf(f+1, pusherRank)) {
			p.setEnPassant(f, EpRight)
		}
	}

	return nil
}

// StringFen returns a FEN representation of the position. Half move
// clock and move number are not tracked and given as "0 1".
func (p *Position) StringFen() string {
	var fen strings.Builder

	for r := Rank8 + 1; r != Rank1; r-- {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r-1)
			piece := PieceNone
			if pt := p.PieceTypeOn(White, sq); pt != PtNone {
				piece = MakePiece(White, pt)
			} else if pt := p.PieceTypeOn(Black, sq); pt != PtNone {
				piece = MakePiece(Black, pt)
			}
			if piece == PieceNone {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				fen.WriteString(fmt.Sprintf("%d", emptySquares))
				emptySquares = 0
			}
			fen.WriteString(piece.String())
		}
		if emptySquares > 0 {
			fen.WriteString(fmt.Sprintf("%d", emptySquares))
		}
		if r-1 > Rank1 {
			fen.WriteString("/")
		}
	}

	fen.WriteString(" " + p.nextPlayer.Str())
	fen.WriteString(" " + p.castlingRights.String())
	fen.WriteString(" " + p.EpSquare().String())
	fen.WriteString(" 0 1")

	return fen.String()
}
