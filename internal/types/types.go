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

// Package types contains the user defined data types for squares, bitboards,
// pieces and moves and their corresponding functionality, plus the static
// reach tables every other package reads.
// Many of these would be perfect enum candidates but GO does not provide enums.
package types

var initialized = false

// init initializes pre computed data structures e.g. bitboards, attack
// tables, etc. Keeps an initialized flag to avoid multiple executions.
func init() {
	if initialized {
		return
	}
	initBb()
	initPseudoAttacks()
	initBetween()
	initEpSquares()
	initialized = true
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// MaxMoves max number of moves of a single chess position
	// (no known legal position exceeds 218)
	MaxMoves = 256

	// MaxPly is a nominal ply limit. The perft driver does not check
	// it: it grows its move lists to whatever depth it is given.
	MaxPly = 64
)
