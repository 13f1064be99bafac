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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmohanu/pyke/internal/config"
	"github.com/nmohanu/pyke/internal/moveslice"
	"github.com/nmohanu/pyke/internal/position"
	. "github.com/nmohanu/pyke/internal/types"
)

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func legalMoves(t *testing.T, fen string) *moveslice.MoveSlice {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	ml := moveslice.NewMoveSlice(MaxMoves)
	GenerateLegalMoves(p, ml)
	return ml
}

func countByType(ml *moveslice.MoveSlice, mt MoveType) int {
	n := 0
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).MoveType() == mt {
			n++
		}
	}
	return n
}

func countByPiece(ml *moveslice.MoveSlice, pt PieceType) int {
	n := 0
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).PieceType() == pt {
			n++
		}
	}
	return n
}

func TestStartPositionMoves(t *testing.T) {
	ml := legalMoves(t, position.StartFen)

	// 16 pawn moves (8 single, 8 double) and 4 knight moves
	assert.Equal(t, 20, ml.Len())
	assert.Equal(t, 16, countByPiece(ml, Pawn))
	assert.Equal(t, 4, countByPiece(ml, Knight))
	assert.Equal(t, 8, countByType(ml, PawnDouble))
	assert.Equal(t, 0, countByType(ml, Capture))
	assert.Equal(t, 0, countByType(ml, Castle))
	assert.Equal(t, 0, countByType(ml, EnPassant))
	assert.Equal(t, 0, countByType(ml, Promotion))
}

func TestBlackAfterE4(t *testing.T) {
	// 1. e2-e4 made on the start position
	p := position.NewPosition()
	p.DoMove(CreateMove(SqE2, SqE4, Pawn, PawnDouble, 0, PtNone))
	assert.Equal(t, Black, p.NextPlayer())
	// no black pawn stands next to e4 so the byte stays zero
	assert.Equal(t, uint8(0), p.EpFlag())

	ml := moveslice.NewMoveSlice(MaxMoves)
	GenerateLegalMoves(p, ml)
	assert.Equal(t, 20, ml.Len())
	assert.Equal(t, uint64(20), CountLegalMoves(p))
}

func TestSicilianMoves(t *testing.T) {
	// after 1. e4 c5 2. Nf3 black has 22 moves
	ml := legalMoves(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2")
	assert.Equal(t, 22, ml.Len())
}

func TestKiwipeteMoves(t *testing.T) {
	ml := legalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, 48, ml.Len())
	assert.Equal(t, 2, countByType(ml, Castle))
	assert.Equal(t, 8, countByType(ml, Capture))
}

func TestCastlingMoves(t *testing.T) {
	ml := legalMoves(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.Equal(t, 26, ml.Len())
	assert.Equal(t, 2, countByType(ml, Castle))

	// castling is not possible when a crossed square is attacked -
	// the rook on f8 covers f1
	ml = legalMoves(t, "r4r2/4k3/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.Equal(t, 1, countByType(ml, Castle))
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).MoveType() == Castle {
			assert.Equal(t, CastleWhiteQueen, ml.At(i).CastleIdx())
		}
	}

	// castling is not possible through occupied squares
	ml = legalMoves(t, "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1")
	assert.Equal(t, 0, countByType(ml, Castle))
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// rook on e1 and bishop on b5 both check the king on e8
	ml := legalMoves(t, "4k3/8/8/1B6/8/8/8/4RK2 b - - 0 1")
	assert.Equal(t, 3, ml.Len())
	assert.Equal(t, ml.Len(), countByPiece(ml, King))
}

func TestSingleCheckEvasions(t *testing.T) {
	// rook on e1 checks the king on e8: the king can step aside,
	// other pieces may only capture the rook or block the e file
	ml := legalMoves(t, "3qk3/8/8/2n5/1b6/8/8/4RK2 b - - 0 1")
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.PieceType() == King {
			continue
		}
		// every non king evasion must land on the check ray
		assert.NotEqual(t, BbZero, m.To().Bb()&Between(SqE8, SqE1))
	}
}

func TestPinnedPieceMoves(t *testing.T) {
	// the rook on d2 is pinned diagonally by the bishop on b4 and
	// has no legal move
	ml := legalMoves(t, "4k3/8/8/8/1b6/8/3R4/4K3 w - - 0 1")
	assert.Equal(t, 0, countByPiece(ml, Rook))

	// removing the pinning bishop restores all 14 rook moves
	ml = legalMoves(t, "4k3/8/8/8/8/8/3R4/4K3 w - - 0 1")
	assert.Equal(t, 14, countByPiece(ml, Rook))

	// a knight pinned on a file has no moves either
	ml = legalMoves(t, "4k3/8/8/8/8/4n3/8/2K1R3 b - - 0 1")
	assert.Equal(t, 0, countByPiece(ml, Knight))

	// an orthogonally pinned rook slides along the pin ray only
	ml = legalMoves(t, "4k3/8/8/8/4r3/8/4R3/4K3 w - - 0 1")
	assert.Equal(t, 2, countByPiece(ml, Rook))
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.PieceType() == Rook {
			assert.Equal(t, FileE, m.To().FileOf())
		}
	}
}

func TestPinnedQueenSlices(t *testing.T) {
	// a diagonally pinned queen moves as a bishop along the pin ray
	ml := legalMoves(t, "4k3/8/8/8/1b6/8/3Q4/4K3 w - - 0 1")
	n := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.PieceType() == Queen {
			n++
			assert.NotEqual(t, BbZero, m.To().Bb()&Between(SqE1, SqB4))
		}
	}
	// c3 blocks, b4 captures the pinner
	assert.Equal(t, 2, n)
}

func TestPinnedPawnMoves(t *testing.T) {
	// a diagonally pinned pawn may only capture the pinner
	ml := legalMoves(t, "4k3/8/8/8/8/2b5/3P4/4K3 w - - 0 1")
	pawnMoves := 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.PieceType() == Pawn {
			pawnMoves++
			assert.Equal(t, Capture, m.MoveType())
			assert.Equal(t, SqC3, m.To())
		}
	}
	assert.Equal(t, 1, pawnMoves)

	// an orthogonally pinned pawn may push but not capture
	ml = legalMoves(t, "4k3/8/4r3/8/8/3p1p2/4P3/4K3 w - - 0 1")
	pawnMoves = 0
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.PieceType() == Pawn {
			pawnMoves++
			assert.Equal(t, FileE, m.To().FileOf())
		}
	}
	assert.Equal(t, 2, pawnMoves)
}

func TestPromotions(t *testing.T) {
	// one pawn on the seventh rank promotes on a8 - four moves, one
	// per promotion piece
	ml := legalMoves(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, 4, countByType(ml, Promotion))
	promos := map[PieceType]bool{}
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.MoveType() == Promotion {
			assert.Equal(t, SqA8, m.To())
			promos[m.PromotionType()] = true
		}
	}
	assert.Len(t, promos, 4)

	// a capturing promotion also yields four moves per destination
	ml = legalMoves(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, 8, countByType(ml, Promotion))
}

func TestEnPassant(t *testing.T) {
	// plain en passant capture is generated
	ml := legalMoves(t, "8/8/8/8/k2Pp3/8/8/4K3 b - d3 0 1")
	assert.Equal(t, 1, countByType(ml, EnPassant))
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.MoveType() == EnPassant {
			assert.Equal(t, SqE4, m.From())
			assert.Equal(t, SqD3, m.To())
		}
	}

	// the infamous horizontal expose: capturing en passant removes
	// two pawns from the fourth rank and uncovers the queen's line
	// to the king - the capture must not be generated
	ml = legalMoves(t, "8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1")
	assert.Equal(t, 0, countByType(ml, EnPassant))
	// five king moves plus the single pawn push
	assert.Equal(t, 6, ml.Len())

	// capturing the double pushed pawn en passant may resolve the
	// check it gave
	ml = legalMoves(t, "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1")
	assert.Equal(t, 1, countByType(ml, EnPassant))
}

func TestEpFlagOnlyImmediately(t *testing.T) {
	// the en passant chance expires with the next move
	p := position.NewPosition()
	p.DoMove(CreateMove(SqE2, SqE4, Pawn, PawnDouble, 0, PtNone))
	p.DoMove(CreateMove(SqG8, SqF6, Knight, Quiet, 0, PtNone))
	assert.Equal(t, uint8(0), p.EpFlag())
}

func TestMaskSetStartPosition(t *testing.T) {
	p := position.NewPosition()
	ms := makeMasks(p, White)
	assert.Equal(t, 0, ms.checkers)
	assert.Equal(t, BbZero, ms.pinDg)
	assert.Equal(t, BbZero, ms.pinOrth)
	assert.Equal(t, ^p.OccupiedBb(White), ms.cmt)
	assert.Equal(t, BbAll, ms.nopin)
}

func TestMaskSetPinsAndChecks(t *testing.T) {
	// rook d2 pinned by bishop b4: the pin ray is b4-c3-d2
	p, _ := position.NewPositionFen("4k3/8/8/8/1b6/8/3R4/4K3 w - - 0 1")
	ms := makeMasks(p, White)
	assert.Equal(t, 0, ms.checkers)
	assert.Equal(t, SqB4.Bb()|SqC3.Bb()|SqD2.Bb(), ms.pinDg)
	assert.Equal(t, BbZero, ms.pinOrth)

	// single check by a rook: check mask is the ray including the rook
	p, _ = position.NewPositionFen("4k3/8/8/8/8/8/8/4r1K1 w - - 0 1")
	ms = makeMasks(p, White)
	assert.Equal(t, 1, ms.checkers)
	assert.Equal(t, SqF1.Bb()|SqE1.Bb(), ms.checkMask)

	// knight check: check mask is the knight square only
	p, _ = position.NewPositionFen("4k3/8/8/8/8/5n2/8/4K3 w - - 0 1")
	ms = makeMasks(p, White)
	assert.Equal(t, 1, ms.checkers)
	assert.Equal(t, SqF3.Bb(), ms.checkMask)

	// double check
	p, _ = position.NewPositionFen("4k3/8/8/1B6/8/8/8/4RK2 b - - 0 1")
	ms = makeMasks(p, Black)
	assert.Equal(t, 2, ms.checkers)
}

func TestCountMatchesGenerate(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1",
		"4k3/8/8/1B6/8/8/8/4RK2 b - - 0 1",
		"8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1",
		"1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err)
		ml := moveslice.NewMoveSlice(MaxMoves)
		GenerateLegalMoves(p, ml)
		assert.Equal(t, uint64(ml.Len()), CountLegalMoves(p), "count mismatch on %s", fen)
	}
}

func TestGenerationDeterministic(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	first := legalMoves(t, fen)
	second := legalMoves(t, fen)
	assert.Equal(t, first.String(), second.String())
}

// unmake(make(pos, m)) == pos bit for bit for every legal move of a
// set of positions covering all move classes
func TestMakeUnmakeAllMoves(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
		"8/8/8/8/k2Pp3/8/8/4K3 b - d3 0 1",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err)
		saved := *p
		ml := moveslice.NewMoveSlice(MaxMoves)
		GenerateLegalMoves(p, ml)
		for i := 0; i < ml.Len(); i++ {
			m := ml.At(i)
			p.DoMove(m)
			p.UpdateCastlingRights(m)
			p.UndoMove(m)
			p.RestoreState(saved.EpFlag(), saved.CastlingRights())
			assert.Equal(t, saved, *p, "make/unmake not symmetric for %s on %s", m.String(), fen)
		}
	}
}
