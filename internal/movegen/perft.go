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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nmohanu/pyke/internal/moveslice"
	"github.com/nmohanu/pyke/internal/position"
	. "github.com/nmohanu/pyke/internal/types"
	"github.com/nmohanu/pyke/internal/util"
)

var out = message.NewPrinter(language.English)

// Perft is a class to test the move generation by counting all leaf
// positions reachable in exactly N plies. It owns one pre allocated
// move list per recursion depth so the tree walk does not allocate.
type Perft struct {
	Nodes uint64

	moveLists []*moveslice.MoveSlice
	stopFlag  bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to
// stop the currently running perft test
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// StartPerftMulti runs perft on the given position for each depth
// from startDepth to endDepth. If this has been started in a go
// routine it can be stopped via Stop()
func (pf *Perft) StartPerftMulti(fen string, startDepth int, endDepth int, divide bool) {
	pf.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if pf.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		pf.StartPerft(fen, i, divide)
	}
}

// StartPerft runs perft to the given depth on the position given as
// a FEN and prints the result, the elapsed time and the nodes per
// second. With divide a per root move breakdown is printed.
func (pf *Perft) StartPerft(fen string, depth int, divide bool) {
	pf.stopFlag = false
	pf.Nodes = 0

	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft error: %s\n", err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	var result uint64
	if divide {
		result = pf.Divide(p, depth)
	} else {
		result = pf.Perft(p, depth)
	}
	elapsed := time.Since(start)

	if pf.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	pf.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", util.Nps(pf.Nodes, elapsed))
	out.Printf("Nodes        : %d\n", pf.Nodes)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// Perft counts the leaf positions reachable from the given position
// in exactly depth plies. The position is mutated in place during
// the tree walk and restored before returning.
func (pf *Perft) Perft(p *position.Position, depth int) uint64 {
	pf.prepareLists(depth)
	return pf.perft(p, depth)
}

// Divide counts like Perft but prints one line per root move with
// the number of leaves below it. Moves are listed in the generation
// order which is deterministic for a given position.
func (pf *Perft) Divide(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	pf.prepareLists(depth)

	ml := pf.moveLists[depth]
	ml.Clear()
	GenerateLegalMoves(p, ml)

	savedEp := p.EpFlag()
	savedCr := p.CastlingRights()

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		p.DoMove(m)
		p.UpdateCastlingRights(m)
		subNodes := pf.perft(p, depth-1)
		p.UndoMove(m)
		p.RestoreState(savedEp, savedCr)
		out.Printf("%s: %d\n", m.String(), subNodes)
		nodes += subNodes
	}
	return nodes
}

// the actual recursive perft. Checkpoints the en passant byte and
// the castling rights on its own frame; make/unmake only restores
// the board.
func (pf *Perft) perft(p *position.Position, depth int) uint64 {
	switch depth {
	case 0:
		return 1
	case 1:
		// one ply above the leaves only the number of moves matters,
		// no move needs to be made
		return CountLegalMoves(p)
	}

	ml := pf.moveLists[depth]
	ml.Clear()
	GenerateLegalMoves(p, ml)

	savedEp := p.EpFlag()
	savedCr := p.CastlingRights()

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		if pf.stopFlag {
			return 0
		}
		m := ml.At(i)
		p.DoMove(m)
		p.UpdateCastlingRights(m)
		nodes += pf.perft(p, depth-1)
		p.UndoMove(m)
		p.RestoreState(savedEp, savedCr)
	}
	return nodes
}

// prepareLists makes sure one move list per depth exists
func (pf *Perft) prepareLists(depth int) {
	for len(pf.moveLists) <= depth {
		pf.moveLists = append(pf.moveLists, moveslice.NewMoveSlice(MaxMoves))
	}
}
