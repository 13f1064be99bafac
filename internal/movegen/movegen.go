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

// Package movegen creates strictly legal moves for a chess position.
// Pin and check masks are built up front so no generated move ever
// has to be taken back for legality filtering; only king moves and
// en passant need an explicit attack test.
package movegen

import (
	"github.com/nmohanu/pyke/internal/attacks"
	"github.com/nmohanu/pyke/internal/moveslice"
	"github.com/nmohanu/pyke/internal/position"
	. "github.com/nmohanu/pyke/internal/types"
)

// GenerateLegalMoves generates all legal moves of the side to move
// into the given move list. The list is not cleared.
//
// Generation order is fixed (castles, bishops, queens diagonal,
// queens orthogonal, rooks, pawns, knights, king) so repeated runs
// on the same position produce identical lists.
func GenerateLegalMoves(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	ms := makeMasks(p, us)

	if ms.checkers < 2 {
		cmt := ms.cmt
		if ms.checkers == 1 {
			// in single check everything but the king may only
			// capture the checker or block the ray
			cmt &= ms.checkMask
		} else {
			generateCastling(p, us, ml)
		}

		bishops := p.PiecesBb(us, Bishop)
		queens := p.PiecesBb(us, Queen)
		rooks := p.PiecesBb(us, Rook)

		generateSliderMoves(p, us, Bishop, Bishop, bishops&ms.nopin, cmt, ml)
		generateSliderMoves(p, us, Bishop, Bishop, bishops&ms.pinDg&^ms.pinOrth, cmt&ms.pinDg, ml)

		generateSliderMoves(p, us, Queen, QueenDiag, queens&ms.nopin, cmt, ml)
		generateSliderMoves(p, us, Queen, QueenDiag, queens&ms.pinDg&^ms.pinOrth, cmt&ms.pinDg, ml)
		generateSliderMoves(p, us, Queen, QueenOrth, queens&ms.nopin, cmt, ml)
		generateSliderMoves(p, us, Queen, QueenOrth, queens&ms.pinOrth&^ms.pinDg, cmt&ms.pinOrth, ml)

		generateSliderMoves(p, us, Rook, Rook, rooks&ms.nopin, cmt, ml)
		generateSliderMoves(p, us, Rook, Rook, rooks&ms.pinOrth&^ms.pinDg, cmt&ms.pinOrth, ml)

		generatePawnMoves(p, us, &ms, cmt, ml)
		generateEpMoves(p, us, ml)

		// pinned knights never have a legal move
		generateSliderMoves(p, us, Knight, Knight, p.PiecesBb(us, Knight)&ms.nopin, cmt, ml)
	}

	generateKingMoves(p, us, ml)
}

// CountLegalMoves returns the number of legal moves of the side to
// move without materializing them. Used by perft one ply above the
// leaves where only the count matters.
func CountLegalMoves(p *position.Position) uint64 {
	us := p.NextPlayer()
	ms := makeMasks(p, us)
	var nodes uint64

	if ms.checkers < 2 {
		cmt := ms.cmt
		if ms.checkers == 1 {
			cmt &= ms.checkMask
		} else {
			for i := 0; i < 2; i++ {
				ci := castleIndexOf(us, i)
				if canCastle(p, us, ci) {
					nodes++
				}
			}
		}

		bishops := p.PiecesBb(us, Bishop)
		queens := p.PiecesBb(us, Queen)
		rooks := p.PiecesBb(us, Rook)

		nodes += countSliderMoves(p, Bishop, bishops&ms.nopin, cmt)
		nodes += countSliderMoves(p, Bishop, bishops&ms.pinDg&^ms.pinOrth, cmt&ms.pinDg)

		nodes += countSliderMoves(p, QueenDiag, queens&ms.nopin, cmt)
		nodes += countSliderMoves(p, QueenDiag, queens&ms.pinDg&^ms.pinOrth, cmt&ms.pinDg)
		nodes += countSliderMoves(p, QueenOrth, queens&ms.nopin, cmt)
		nodes += countSliderMoves(p, QueenOrth, queens&ms.pinOrth&^ms.pinDg, cmt&ms.pinOrth)

		nodes += countSliderMoves(p, Rook, rooks&ms.nopin, cmt)
		nodes += countSliderMoves(p, Rook, rooks&ms.pinOrth&^ms.pinDg, cmt&ms.pinOrth)

		nodes += countPawnMoves(p, us, &ms, cmt)
		nodes += countEpMoves(p, us)

		nodes += countSliderMoves(p, Knight, p.PiecesBb(us, Knight)&ms.nopin, cmt)
	}

	return nodes + uint64(kingDestinations(p, us).PopCount())
}

// generateSliderMoves creates moves for all pieces on the sources
// bitboard restricted to the cmt squares. The reach piece type
// selects the attack lookup (QueenDiag/QueenOrth for pinned queens)
// while pt is the piece type written into the move.
func generateSliderMoves(p *position.Position, us Color, pt PieceType, reach PieceType,
	sources Bitboard, cmt Bitboard, ml *moveslice.MoveSlice) {

	them := us.Flip()
	occ := p.OccupiedAll()
	oppOcc := p.OccupiedBb(them)

	for sources != 0 {
		from := sources.PopLsb()
		targets := attacks.AttacksBb(reach, from, occ) & cmt

		quiets := targets &^ occ
		for quiets != 0 {
			to := quiets.PopLsb()
			ml.PushBack(CreateMove(from, to, pt, Quiet, 0, PtNone))
		}
		captures := targets & oppOcc
		for captures != 0 {
			to := captures.PopLsb()
			ml.PushBack(CreateMove(from, to, pt, Capture, 0, p.PieceTypeOn(them, to)))
		}
	}
}

// countSliderMoves is the counting twin of generateSliderMoves
func countSliderMoves(p *position.Position, reach PieceType, sources Bitboard, cmt Bitboard) uint64 {
	occ := p.OccupiedAll()
	var nodes uint64
	for sources != 0 {
		from := sources.PopLsb()
		nodes += uint64((attacks.AttacksBb(reach, from, occ) & cmt).PopCount())
	}
	return nodes
}

// pawnTargetSet holds the target bitboards of all unpinned pawns,
// already restricted to cmt. Promotion targets are still included
// and split off by the callers.
type pawnTargetSet struct {
	singlePush Bitboard
	doublePush Bitboard
	capWest    Bitboard
	capEast    Bitboard
	up         Direction
	upWest     Direction
	upEast     Direction
}

// unpinnedPawnTargets computes the reachable squares of all unpinned
// pawns with whole board shifts: the shift-and-mask form handles the
// board edge and the blocked-intermediate-square rule in two
// operations.
func unpinnedPawnTargets(p *position.Position, us Color, ms *maskSet, cmt Bitboard) pawnTargetSet {
	var ts pawnTargetSet
	pawns := p.PiecesBb(us, Pawn) & ms.nopin
	occ := p.OccupiedAll()
	oppOcc := p.OccupiedBb(us.Flip())

	ts.up = Direction(us.MoveDirection()) * North
	ts.upWest = ts.up + West
	ts.upEast = ts.up + East

	single := ShiftBitboard(pawns, ts.up) &^ occ
	ts.doublePush = ShiftBitboard(single&us.PawnDoubleRank(), ts.up) &^ occ & cmt
	ts.singlePush = single & cmt
	ts.capWest = ShiftBitboard(pawns, ts.upWest) & oppOcc & cmt
	ts.capEast = ShiftBitboard(pawns, ts.upEast) & oppOcc & cmt
	return ts
}

// generatePawnMoves creates all pawn moves except en passant.
// Unpinned pawns are handled set wise, pinned pawns piece by piece:
// a diagonally pinned pawn may only capture within its pin ray, an
// orthogonally pinned pawn may only push within its pin ray.
func generatePawnMoves(p *position.Position, us Color, ms *maskSet, cmt Bitboard, ml *moveslice.MoveSlice) {
	them := us.Flip()
	promoRank := us.PromotionRankBb()

	ts := unpinnedPawnTargets(p, us, ms, cmt)

	// single pushes - promotions split off
	pushPromos := ts.singlePush & promoRank
	for quiets := ts.singlePush &^ promoRank; quiets != 0; {
		to := quiets.PopLsb()
		ml.PushBack(CreateMove(backward(to, ts.up), to, Pawn, Quiet, 0, PtNone))
	}
	for pushPromos != 0 {
		to := pushPromos.PopLsb()
		pushPromotions(backward(to, ts.up), to, PtNone, ml)
	}

	// double pushes
	for doubles := ts.doublePush; doubles != 0; {
		to := doubles.PopLsb()
		from := backward(backward(to, ts.up), ts.up)
		ml.PushBack(CreateMove(from, to, Pawn, PawnDouble, 0, PtNone))
	}

	// captures
	for _, cs := range [2]struct {
		targets Bitboard
		dir     Direction
	}{{ts.capWest, ts.upWest}, {ts.capEast, ts.upEast}} {
		capPromos := cs.targets & promoRank
		for captures := cs.targets &^ promoRank; captures != 0; {
			to := captures.PopLsb()
			ml.PushBack(CreateMove(backward(to, cs.dir), to, Pawn, Capture, 0, p.PieceTypeOn(them, to)))
		}
		for capPromos != 0 {
			to := capPromos.PopLsb()
			pushPromotions(backward(to, cs.dir), to, p.PieceTypeOn(them, to), ml)
		}
	}

	// pinned pawns
	pawns := p.PiecesBb(us, Pawn)
	for pinned := pawns & ms.pinDg &^ ms.pinOrth; pinned != 0; {
		from := pinned.PopLsb()
		targets := GetPawnAttacks(us, from) & p.OccupiedBb(them) & cmt & ms.pinDg
		for targets != 0 {
			to := targets.PopLsb()
			if to.Bb()&promoRank != 0 {
				pushPromotions(from, to, p.PieceTypeOn(them, to), ml)
			} else {
				ml.PushBack(CreateMove(from, to, Pawn, Capture, 0, p.PieceTypeOn(them, to)))
			}
		}
	}
	for pinned := pawns & ms.pinOrth &^ ms.pinDg; pinned != 0; {
		from := pinned.PopLsb()
		single, double := pinnedPawnPushes(p, us, from, cmt&ms.pinOrth)
		if single != 0 {
			ml.PushBack(CreateMove(from, single.Lsb(), Pawn, Quiet, 0, PtNone))
		}
		if double != 0 {
			ml.PushBack(CreateMove(from, double.Lsb(), Pawn, PawnDouble, 0, PtNone))
		}
	}
}

// countPawnMoves is the counting twin of generatePawnMoves
func countPawnMoves(p *position.Position, us Color, ms *maskSet, cmt Bitboard) uint64 {
	them := us.Flip()
	promoRank := us.PromotionRankBb()
	ts := unpinnedPawnTargets(p, us, ms, cmt)

	nonPromo := (ts.singlePush &^ promoRank).PopCount() +
		ts.doublePush.PopCount() +
		(ts.capWest &^ promoRank).PopCount() +
		(ts.capEast &^ promoRank).PopCount()
	promo := (ts.singlePush & promoRank).PopCount() +
		(ts.capWest & promoRank).PopCount() +
		(ts.capEast & promoRank).PopCount()

	nodes := uint64(nonPromo) + 4*uint64(promo)

	pawns := p.PiecesBb(us, Pawn)
	for pinned := pawns & ms.pinDg &^ ms.pinOrth; pinned != 0; {
		from := pinned.PopLsb()
		targets := GetPawnAttacks(us, from) & p.OccupiedBb(them) & cmt & ms.pinDg
		nodes += uint64((targets &^ promoRank).PopCount())
		nodes += 4 * uint64((targets & promoRank).PopCount())
	}
	for pinned := pawns & ms.pinOrth &^ ms.pinDg; pinned != 0; {
		from := pinned.PopLsb()
		single, double := pinnedPawnPushes(p, us, from, cmt&ms.pinOrth)
		nodes += uint64(single.PopCount() + double.PopCount())
	}
	return nodes
}

// pinnedPawnPushes returns the single and double push target of one
// orthogonally pinned pawn, each restricted to the given mask.
// A pinned push can never promote: the pinner always blocks the file
// before the promotion rank.
func pinnedPawnPushes(p *position.Position, us Color, from Square, cmtPin Bitboard) (Bitboard, Bitboard) {
	occ := p.OccupiedAll()
	up := Direction(us.MoveDirection()) * North
	single := ShiftBitboard(from.Bb(), up) &^ occ
	double := ShiftBitboard(single&us.PawnDoubleRank(), up) &^ occ & cmtPin
	return single & cmtPin, double
}

// pushPromotions emits the four promotion moves for one from/to pair
func pushPromotions(from Square, to Square, captured PieceType, ml *moveslice.MoveSlice) {
	ml.PushBack(CreateMove(from, to, Pawn, Promotion, uint8(Queen), captured))
	ml.PushBack(CreateMove(from, to, Pawn, Promotion, uint8(Rook), captured))
	ml.PushBack(CreateMove(from, to, Pawn, Promotion, uint8(Bishop), captured))
	ml.PushBack(CreateMove(from, to, Pawn, Promotion, uint8(Knight), captured))
}

// backward returns the square the shifted pawn came from. Callers
// only pass squares produced by the corresponding forward shift so
// the arithmetic cannot leave the board.
func backward(to Square, d Direction) Square {
	return Square(int(to) - int(d))
}

// generateEpMoves creates the up to two en passant captures encoded
// in the en passant byte. En passant uniquely removes two pieces
// from the same rank which can expose the king along that rank, so
// each candidate is verified by making the move and re-testing the
// king; this also covers pins of the capturing pawn and check
// resolution.
func generateEpMoves(p *position.Position, us Color, ml *moveslice.MoveSlice) {
	if p.EpFlag() == 0 {
		return
	}
	f := p.EpFile()
	for side := EpLeft; side <= EpRight; side++ {
		if !p.EpFromSide(side) {
			continue
		}
		pair := GetEpPair(us, side, f)
		m := CreateMove(pair.From, pair.To, Pawn, EnPassant, 0, Pawn)
		if epLegal(p, us, m) {
			ml.PushBack(m)
		}
	}
}

// countEpMoves is the counting twin of generateEpMoves
func countEpMoves(p *position.Position, us Color) uint64 {
	if p.EpFlag() == 0 {
		return 0
	}
	var nodes uint64
	f := p.EpFile()
	for side := EpLeft; side <= EpRight; side++ {
		if !p.EpFromSide(side) {
			continue
		}
		pair := GetEpPair(us, side, f)
		if epLegal(p, us, CreateMove(pair.From, pair.To, Pawn, EnPassant, 0, Pawn)) {
			nodes++
		}
	}
	return nodes
}

// epLegal makes the en passant move, tests the own king and unmakes
func epLegal(p *position.Position, us Color, m Move) bool {
	savedEp := p.EpFlag()
	p.DoMove(m)
	legal := !p.IsAttacked(p.KingSquare(us), us.Flip(), p.OccupiedAll())
	p.UndoMove(m)
	p.RestoreState(savedEp, p.CastlingRights())
	return legal
}

// kingDestinations returns the legal target squares of the king.
// The king is lifted off the occupancy for the attack tests because
// a slider keeps attacking through the square the king just left.
func kingDestinations(p *position.Position, us Color) Bitboard {
	from := p.KingSquare(us)
	them := us.Flip()
	occ := p.OccupiedAll() &^ from.Bb()

	targets := GetPseudoAttacks(King, from) &^ p.OccupiedBb(us)
	legal := BbZero
	for targets != 0 {
		to := targets.PopLsb()
		if !p.IsAttacked(to, them, occ) {
			legal.PushSquare(to)
		}
	}
	return legal
}

// generateKingMoves creates all legal king moves except castling
func generateKingMoves(p *position.Position, us Color, ml *moveslice.MoveSlice) {
	from := p.KingSquare(us)
	them := us.Flip()
	targets := kingDestinations(p, us)

	quiets := targets &^ p.OccupiedAll()
	for quiets != 0 {
		to := quiets.PopLsb()
		ml.PushBack(CreateMove(from, to, King, Quiet, 0, PtNone))
	}
	captures := targets & p.OccupiedBb(them)
	for captures != 0 {
		to := captures.PopLsb()
		ml.PushBack(CreateMove(from, to, King, Capture, 0, p.PieceTypeOn(them, to)))
	}
}

// castleIndexOf returns the castle index of the given color and
// side (0 = kingside, 1 = queenside)
func castleIndexOf(us Color, side int) CastleIndex {
	return CastleIndex(2*int(us) + side)
}

// canCastle verifies the full castle preconditions for one variant:
// the right is still present, all squares between king and rook are
// unoccupied and neither the king square nor the two squares the
// king crosses are attacked.
func canCastle(p *position.Position, us Color, ci CastleIndex) bool {
	if !p.CanCastle(ci) {
		return false
	}
	occ := p.OccupiedAll()
	kingFrom := CastleKingFrom[ci]
	rookFrom := CastleRookFrom[ci]

	// for queenside this includes the b-file square the rook crosses
	if Between(kingFrom, rookFrom)&^rookFrom.Bb()&occ != 0 {
		return false
	}
	// the king square itself is known to be unattacked (checkers == 0)
	them := us.Flip()
	if p.IsAttacked(CastleRookTo[ci], them, occ) || p.IsAttacked(CastleKingTo[ci], them, occ) {
		return false
	}
	return true
}

// generateCastling creates the castle moves of the side to move.
// Only called when the king is not in check.
func generateCastling(p *position.Position, us Color, ml *moveslice.MoveSlice) {
	for side := 0; side < 2; side++ {
		ci := castleIndexOf(us, side)
		if canCastle(p, us, ci) {
			ml.PushBack(CreateMove(CastleKingFrom[ci], CastleKingTo[ci], King, Castle, uint8(ci), PtNone))
		}
	}
}
