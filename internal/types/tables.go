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

// Static reach tables. Computed once at start, immutable thereafter.

// pre computed attacks of a king for each square
var kingAttacks [SqLength]Bitboard

// pre computed attacks of a knight for each square
var knightAttacks [SqLength]Bitboard

// pre computed attacks of a pawn of each color for each square
var pawnAttacks [ColorLength][SqLength]Bitboard

// pre computed bitboards for the squares between two squares if they
// are on a common rank, file or diagonal. The second square itself is
// included, the first is not. Empty otherwise.
var betweenBb [SqLength][SqLength]Bitboard

// GetPseudoAttacks returns the pre computed pseudo attacks of a king or
// knight on the given square. Sliding pieces are answered by the
// attacks package which knows about occupancy.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	switch pt {
	case King:
		return kingAttacks[sq]
	case Knight:
		return knightAttacks[sq]
	}
	return BbZero
}

// GetPawnAttacks returns the two diagonal attack squares of a pawn
// of the given color on the given square.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Between returns the bitboard of the squares strictly between the
// two given squares plus the second square itself when both share a
// rank, file or diagonal. Empty otherwise.
func Between(sq1 Square, sq2 Square) Bitboard {
	return betweenBb[sq1][sq2]
}

var kingDirections = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// the knight L-jumps expressed as two consecutive single steps so the
// board edge check of Square.To applies on both
var knightSteps = [8][2]Direction{
	{North, Northeast}, {North, Northwest},
	{East, Northeast}, {East, Southeast},
	{South, Southeast}, {South, Southwest},
	{West, Northwest}, {West, Southwest},
}

func initPseudoAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingDirections {
			if to := sq.To(d); to != SqNone {
				kingAttacks[sq].PushSquare(to)
			}
		}
		for _, steps := range knightSteps {
			if mid := sq.To(steps[0]); mid != SqNone {
				if to := mid.To(steps[1]); to != SqNone {
					knightAttacks[sq].PushSquare(to)
				}
			}
		}
		if to := sq.To(Northwest); to != SqNone {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Northeast); to != SqNone {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Southwest); to != SqNone {
			pawnAttacks[Black][sq].PushSquare(to)
		}
		if to := sq.To(Southeast); to != SqNone {
			pawnAttacks[Black][sq].PushSquare(to)
		}
	}
}

func initBetween() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for _, d := range kingDirections {
			ray := BbZero
			to := sq1.To(d)
			for to != SqNone {
				// each target on the ray gets the squares walked so
				// far plus the target itself
				betweenBb[sq1][to] = ray | to.Bb()
				ray |= to.Bb()
				to = to.To(d)
			}
		}
	}
}

// ////////////////////
// En passant square pairs

// EpPair holds the from and to square of an en passant capture.
type EpPair struct {
	From Square
	To   Square
}

// Constants naming the side the capturing pawn comes from, seen from
// the double pushed pawn.
const (
	EpLeft  = 0
	EpRight = 1
)

// pre computed from/to squares for the side to move capturing en
// passant onto the given file, from the left or right adjacent file
var epSquares [ColorLength][2][8]EpPair

// GetEpPair returns the from and to square for the given color
// capturing en passant on the given file from the given side.
// The side is seen from the double pushed pawn: EpLeft means the
// capturer stands on the lower adjacent file.
func GetEpPair(c Color, side int, f File) EpPair {
	return epSquares[c][side][f]
}

func initEpSquares() {
	for f := FileA; f <= FileH; f++ {
		// white captures a black pawn which double pushed to rank 5,
		// landing on rank 6. Black captures on rank 3.
		if f > FileA {
			epSquares[White][EpLeft][f] = EpPair{SquareOf(f-1, Rank5), SquareOf(f, Rank6)}
			epSquares[Black][EpLeft][f] = EpPair{SquareOf(f-1, Rank4), SquareOf(f, Rank3)}
		}
		if f < FileH {
			epSquares[White][EpRight][f] = EpPair{SquareOf(f+1, Rank5), SquareOf(f, Rank6)}
			epSquares[Black][EpRight][f] = EpPair{SquareOf(f+1, Rank4), SquareOf(f, Rank3)}
		}
	}
}

// ////////////////////
// Castling squares

// king and rook from/to squares for the four castle variants
// indexed by CastleIndex (WK, WQ, BK, BQ)
var (
	CastleKingFrom = [CastleLength]Square{SqE1, SqE1, SqE8, SqE8}
	CastleKingTo   = [CastleLength]Square{SqG1, SqC1, SqG8, SqC8}
	CastleRookFrom = [CastleLength]Square{SqH1, SqA1, SqH8, SqA8}
	CastleRookTo   = [CastleLength]Square{SqF1, SqD1, SqF8, SqD8}
)
