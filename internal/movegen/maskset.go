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

package movegen

import (
	"github.com/nmohanu/pyke/internal/attacks"
	"github.com/nmohanu/pyke/internal/position"
	. "github.com/nmohanu/pyke/internal/types"
)

// maskSet holds the per ply masks the legal move generator needs to
// avoid the generate-then-filter pattern. It is rebuilt from the
// position for every ply and lives on the stack of the recursion.
type maskSet struct {
	// cmt ("can move to") are the squares the side to move may put a
	// piece on: everything but own pieces, narrowed to the check mask
	// by the generator when in single check.
	cmt Bitboard

	// pin masks: the full rays from the king through each pinned
	// piece up to and including the pinning slider. A piece on
	// pinDg may only move within pinDg, likewise pinOrth.
	pinDg   Bitboard
	pinOrth Bitboard

	// checkMask are the squares which resolve a single check: the
	// checker itself plus, for sliding checkers, the squares between
	// king and checker. Only valid when checkers == 1.
	checkMask Bitboard

	// nopin is the complement of both pin masks
	nopin Bitboard

	// number of pieces giving check: 0, 1 or 2 (double check)
	checkers int
}

// makeMasks creates all masks for the side to move of the given
// position.
//
// Slider candidates are found by looking outward from the king with
// own pieces transparent (occupancy is the opponent board only), so
// an opposing piece on the ray hides everything behind it. For each
// candidate the number of own pieces on the ray decides: none - the
// slider gives check, exactly one - that piece is pinned, two or
// more - neither.
func makeMasks(p *position.Position, us Color) maskSet {
	var ms maskSet

	them := us.Flip()
	ownOcc := p.OccupiedBb(us)
	oppOcc := p.OccupiedBb(them)
	ksq := p.KingSquare(us)

	ms.cmt = ^ownOcc

	// contact checkers: knights on the king's knight reach and pawns
	// on the king's own pawn attack squares
	if kn := GetPseudoAttacks(Knight, ksq) & p.PiecesBb(them, Knight); kn != 0 {
		ms.checkMask |= kn
		ms.checkers++
	}
	if pw := GetPawnAttacks(us, ksq) & p.PiecesBb(them, Pawn); pw != 0 {
		ms.checkMask |= pw
		ms.checkers++
	}

	// sliding checkers and pins
	diagCandidates := attacks.BishopAttacks(ksq, oppOcc) &
		(p.PiecesBb(them, Bishop) | p.PiecesBb(them, Queen))
	orthCandidates := attacks.RookAttacks(ksq, oppOcc) &
		(p.PiecesBb(them, Rook) | p.PiecesBb(them, Queen))

	for diagCandidates != 0 {
		slider := diagCandidates.PopLsb()
		between := Between(ksq, slider)
		switch (between & ownOcc).PopCount() {
		case 0:
			ms.checkMask |= between
			ms.checkers++
		case 1:
			ms.pinDg |= between
		}
	}
	for orthCandidates != 0 {
		slider := orthCandidates.PopLsb()
		between := Between(ksq, slider)
		switch (between & ownOcc).PopCount() {
		case 0:
			ms.checkMask |= between
			ms.checkers++
		case 1:
			ms.pinOrth |= between
		}
	}

	ms.nopin = ^(ms.pinDg | ms.pinOrth)
	return ms
}
