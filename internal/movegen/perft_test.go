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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmohanu/pyke/internal/attacks"
	"github.com/nmohanu/pyke/internal/position"
)

// Reference values from https://www.chessprogramming.org/Perft_Results

var startPosResults = []uint64{1, 20, 400, 8_902, 197_281, 4_865_609, 119_060_324}

const (
	kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos3Fen     = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pos4Fen     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos5Fen     = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	pos6Fen     = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

var kiwipeteResults = []uint64{1, 48, 2_039, 97_862, 4_085_603, 193_690_690}
var pos3Results = []uint64{1, 14, 191, 2_812, 43_238, 674_624, 11_030_083}
var pos4Results = []uint64{1, 6, 264, 9_467, 422_333, 15_833_292}
var pos5Results = []uint64{1, 44, 1_486, 62_379, 2_103_487, 89_941_194}
var pos6Results = []uint64{1, 46, 2_079, 89_890, 3_894_594, 164_075_551}

func perftNodes(t *testing.T, fen string, depth int) uint64 {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	return NewPerft().Perft(p, depth)
}

func TestPerftDepthZero(t *testing.T) {
	assert.Equal(t, uint64(1), perftNodes(t, position.StartFen, 0))
}

func TestPerftStartPosition(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, startPosResults[depth], perftNodes(t, position.StartFen, depth), "depth %d", depth)
	}
}

func TestPerftStartPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	assert.Equal(t, startPosResults[6], perftNodes(t, position.StartFen, 6))
}

func TestPerftKiwipete(t *testing.T) {
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, kiwipeteResults[depth], perftNodes(t, kiwipeteFen, depth), "depth %d", depth)
	}
}

func TestPerftKiwipeteDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	assert.Equal(t, kiwipeteResults[5], perftNodes(t, kiwipeteFen, 5))
}

func TestPerftPosition3(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, pos3Results[depth], perftNodes(t, pos3Fen, depth), "depth %d", depth)
	}
}

func TestPerftPosition3Deep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	assert.Equal(t, pos3Results[6], perftNodes(t, pos3Fen, 6))
}

func TestPerftPosition4(t *testing.T) {
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, pos4Results[depth], perftNodes(t, pos4Fen, depth), "depth %d", depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, pos5Results[depth], perftNodes(t, pos5Fen, depth), "depth %d", depth)
	}
}

func TestPerftPosition6(t *testing.T) {
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, pos6Results[depth], perftNodes(t, pos6Fen, depth), "depth %d", depth)
	}
}

// both slider indexes must yield identical perft numbers
func TestPerftPextIndex(t *testing.T) {
	attacks.UsePext(true)
	defer attacks.UsePext(false)
	assert.Equal(t, startPosResults[4], perftNodes(t, position.StartFen, 4))
	assert.Equal(t, kiwipeteResults[3], perftNodes(t, kiwipeteFen, 3))
}

// Divide must return the same total as the plain count
func TestPerftDivide(t *testing.T) {
	p, _ := position.NewPositionFen(kiwipeteFen)
	pf := NewPerft()
	assert.Equal(t, kiwipeteResults[3], pf.Divide(p, 3))
}

func TestPerftStartMulti(t *testing.T) {
	pf := NewPerft()
	pf.StartPerftMulti(position.StartFen, 1, 3, false)
	assert.Equal(t, startPosResults[3], pf.Nodes)
}

func TestPerftInvalidFen(t *testing.T) {
	pf := NewPerft()
	pf.StartPerft("not a fen", 3, false)
	assert.Equal(t, uint64(0), pf.Nodes)
}
