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

// Package attacks answers slider reach queries in O(1). Two
// interchangeable table indexes are built at startup: magic multiply
// ("fancy" magic bitboards) and a PEXT style offset index. Both map a
// masked occupancy to a pre computed attack bitboard and must answer
// identically for every (square, occupancy) pair.
package attacks

import (
	. "github.com/nmohanu/pyke/internal/types"
)

// table sizes when every square's attack sets are stored back to back
const (
	rookTableSize   = 102400
	bishopTableSize = 5248
)

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

var usePext = false

func init() {
	initMagics(rookMagicTable[:], &rookMagics, &rookDirections)
	initMagics(bishopMagicTable[:], &bishopMagics, &bishopDirections)
	initPext(rookPextTable[:], &rookPextOffsets, &rookPextMasks, &rookDirections)
	initPext(bishopPextTable[:], &bishopPextOffsets, &bishopPextMasks, &bishopDirections)
}

// UsePext switches the slider lookups between the magic multiply
// index (false, the default) and the PEXT style index (true). Both
// produce identical attack boards; this only selects the lookup.
func UsePext(flag bool) {
	usePext = flag
}

// RookAttacks returns the attack bitboard of a rook on the given
// square for the given total occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	if usePext {
		return rookPextAttacks(sq, occupied)
	}
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// BishopAttacks returns the attack bitboard of a bishop on the given
// square for the given total occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	if usePext {
		return bishopPextAttacks(sq, occupied)
	}
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks returns the attack bitboard of a queen on the given
// square for the given total occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// AttacksBb returns a bitboard representing all the squares attacked
// by a piece of the given type (not pawn) placed on sq. For sliding
// pieces this uses the pre computed attack tables, for knight and
// king the pre computed pseudo attacks. QueenDiag and QueenOrth
// select the diagonal or orthogonal slice of the queen's reach.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop, QueenDiag:
		return BishopAttacks(sq, occupied)
	case Rook, QueenOrth:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return GetPseudoAttacks(pt, sq)
	}
}

// RookMask returns the relevant occupancy mask of a rook on the
// given square: the ray squares whose occupancy influences the reach,
// excluding the board edge and the square itself.
func RookMask(sq Square) Bitboard {
	return rookMagics[sq].mask
}

// BishopMask returns the relevant occupancy mask of a bishop on the
// given square.
func BishopMask(sq Square) Bitboard {
	return bishopMagics[sq].mask
}

// slidingAttack calculates sliding attacks along the given directions
// for the given square and the given board occupation by walking the
// rays square by square. Too slow for move generation but the ground
// truth for building and verifying the table indexes.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq.To(directions[i])
		for s != SqNone {
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			s = s.To(directions[i])
		}
	}
	return attack
}

// relevantMask computes the relevant occupancy mask for a slider on
// the given square: its empty board reach minus the board edges.
func relevantMask(directions *[4]Direction, sq Square) Bitboard {
	edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
	return slidingAttack(directions, sq, BbZero) &^ edges
}
