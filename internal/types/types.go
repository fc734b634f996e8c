//
// Corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2024 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types contains the user defined data types and their corresponding
// functionality needed throughout the chess engine: squares, bitboards,
// pieces, moves, and the magic-bitboard sliding attack tables.
// Many of these would be perfect enum candidates but Go does not provide enums.
package types

import (
	"github.com/corvidchess/corvid/internal/logging"
)

var log = logging.GetLog()

var initialized = false

// init initializes pre computed data structures (bitboards, magic tables,
// positional value tables). Keeps an initialized flag to avoid re-running
// this more than once.
func init() {
	if initialized {
		return
	}
	log.Debug("Initializing data types")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// MaxDepth max search depth
	MaxDepth = 100

	// MaxMoves max number of moves for a game
	MaxMoves = 512

	// KB = 1024 bytes
	KB uint64 = 1024

	// MB = KB * KB
	MB uint64 = KB * KB

	// GB = KB * MB
	GB uint64 = KB * MB

	// GamePhaseMax maximum game phase value. Game phase is used to
	// determine whether we are in the opening/middlegame or the endgame
	// phase of a chess game. Game phase is calculated from the number of
	// officers on the board, up to this maximum.
	GamePhaseMax = 24
)
