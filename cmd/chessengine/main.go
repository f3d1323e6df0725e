/*
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/sync/errgroup"

	"github.com/vfomin/chesscore/rules"
	"github.com/vfomin/chesscore/search"
)

const (
	name = "chessengine"

	defaultBudget = 3 * time.Second
)

var (
	flgWhite  bool
	flgBlack  bool
	flgFEN    string
	flgBudget int
	flgSVG    string
)

func main() {
	flag.BoolVar(&flgWhite, "white", false, "computer plays white")
	flag.BoolVar(&flgBlack, "black", false, "computer plays black")
	flag.StringVar(&flgFEN, "fen", rules.InitialPositionFEN, "starting position in FEN")
	flag.IntVar(&flgBudget, "budget", int(defaultBudget/time.Millisecond), "search wall-clock budget in milliseconds")
	flag.StringVar(&flgSVG, "svg", "", "write an SVG dump of every reached position under this directory")
	flag.Usage = func() {
		usage()
		os.Exit(1)
	}
	flag.Parse()

	if flag.NArg() != 0 {
		usage()
		os.Exit(1)
	}
	if flgWhite && flgBlack {
		usage()
		os.Exit(1)
	}

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	computerIsWhite := flgWhite // default (neither flag set): computer plays black

	pos, err := rules.NewPositionFromFEN(flgFEN)
	if err != nil {
		logger.Fatalf("chessengine: bad --fen: %v", err)
	}

	if err := run(context.Background(), logger, pos, computerIsWhite); err != nil {
		logger.Fatalf("chessengine: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chessengine [--white | --black] [--fen FEN] [--budget ms] [--svg dir]")
}

// run drives the interactive game loop: print the board, ask the human for
// a move when it is their turn, otherwise let the engine think, until the
// position is terminal or drawn.
func run(ctx context.Context, logger *log.Logger, pos *rules.Position, computerIsWhite bool) error {
	engine := search.NewEngine()
	scanner := bufio.NewScanner(os.Stdin)
	moveIndex := 0

	for {
		fmt.Println(pos.Render())

		if term := pos.Terminal(); term != rules.TerminalNone {
			logger.Println("game over:", terminalString(term))
			return nil
		}
		if pos.IsDraw() {
			logger.Println("game drawn")
			return nil
		}

		if pos.WhiteToMove() == computerIsWhite {
			move, err := think(ctx, logger, engine, pos)
			if err != nil {
				return err
			}
			if move.IsNone() {
				logger.Println("engine has no legal move")
				return nil
			}
			logger.Println("engine plays", move.String())
			pos.Push(move)
		} else {
			fmt.Print("your move: ")
			if !scanner.Scan() {
				return nil
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "quit" {
				return nil
			}
			move, err := pos.ParseUserMove(line)
			if err != nil {
				logger.Println(err)
				continue
			}
			pos.Push(move)
		}

		moveIndex++
		if flgSVG != "" {
			if err := dumpSVG(pos, moveIndex); err != nil {
				logger.Println("svg dump failed:", err)
			}
		}
	}
}

// think runs the search under the wall-clock budget alongside a watcher
// goroutine that calls engine.Cancel once the budget's context is done.
// Stdin is not read while the engine thinks, so the search cannot be
// stopped early from the keyboard.
func think(parent context.Context, logger *log.Logger, engine *search.Engine, pos *rules.Position) (rules.Move, error) {
	ctx, cancel := context.WithTimeout(parent, time.Duration(flgBudget)*time.Millisecond)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		engine.Cancel()
		return nil
	})

	var best rules.Move
	g.Go(func() error {
		defer cancel()
		best = engine.Solve(pos, time.Duration(flgBudget)*time.Millisecond, func(r search.DepthReport) {
			logger.Println(search.FormatProgress(r))
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return rules.MoveNone, err
	}
	return best, nil
}

func terminalString(t rules.Terminal) string {
	switch t {
	case rules.WhiteMated:
		return "checkmate, black wins"
	case rules.BlackMated:
		return "checkmate, white wins"
	case rules.WhiteStalemated, rules.BlackStalemated:
		return "stalemate"
	}
	return "unknown"
}

// dumpSVG writes the current position to <flgSVG>/move-<n>.svg using an
// eight-by-eight checkered board with piece letters in each occupied cell.
// This is a debugging aid, not part of the engine's scored behavior.
func dumpSVG(pos *rules.Position, moveIndex int) error {
	if err := os.MkdirAll(flgSVG, 0o755); err != nil {
		return err
	}
	f, err := os.Create(fmt.Sprintf("%s/move-%03d.svg", flgSVG, moveIndex))
	if err != nil {
		return err
	}
	defer f.Close()

	const cell = 60
	canvas := svg.New(f)
	canvas.Start(8*cell, 8*cell)
	for rank := rules.Rank8; rank >= rules.Rank1; rank-- {
		for file := rules.FileA; file <= rules.FileH; file++ {
			x, y := file*cell, (rules.Rank8-rank)*cell
			fill := "#eeeed2"
			if (file+rank)%2 == 0 {
				fill = "#769656"
			}
			canvas.Rect(x, y, cell, cell, "fill:"+fill)

			sq := rank*8 + file
			piece := pos.Square(sq)
			if piece != rules.Empty {
				canvas.Text(x+cell/2, y+cell/2+8, string(piece),
					"text-anchor:middle;font-size:28px;font-family:monospace")
			}
		}
	}
	canvas.End()
	return nil
}
