// Command camelot is a console driver for debugging and casual play against the engine.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"github.com/seekerror/camelot/pkg/board"
	"github.com/seekerror/camelot/pkg/engine"
	"github.com/seekerror/logw"
	"os"
	"strings"
)

var preset = flag.String("preset", "medium", "Difficulty preset: easy, medium, hard, expert")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: camelot [options]

CAMELOT is a console driver for the Camelot board game engine.
Enter a turn in notation (e.g. "F6-F8" or "F6xH8xJ6"), or one of:
  print, p            print the board
  analyze, a          run the engine and print its chosen turn
  move <notation>     play the given turn
  new, n              start a new game
  quit, q             exit

Options:
`)
		flag.PrintDefaults()
	}
}

func resolvePreset(name string) engine.Options {
	switch strings.ToLower(name) {
	case "easy":
		return engine.Easy
	case "hard":
		return engine.Hard
	case "expert":
		return engine.Expert
	default:
		return engine.Medium
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, engine.WithOptions(resolvePreset(*preset)))

	fmt.Println(engine.Name())
	printBoard(e)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("camelot> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "print", "p":
			printBoard(e)

		case "new", "n":
			e.NewGame(ctx)
			printBoard(e)

		case "analyze", "a":
			a := e.Analyze(ctx)
			fmt.Println(a)

		case "move":
			if len(parts) < 2 {
				fmt.Println("usage: move <notation>")
				continue
			}
			if err := e.Play(ctx, parts[1]); err != nil {
				fmt.Println(err)
				continue
			}
			printBoard(e)

		case "quit", "exit", "q":
			return

		default:
			// Assume a turn in notation was entered directly.
			if err := e.Play(ctx, parts[0]); err != nil {
				fmt.Printf("invalid turn: %v: %v\n", parts[0], err)
				continue
			}
			printBoard(e)
		}

		if symbol, won := e.CheckWinCondition(board.White); won {
			logw.Infof(ctx, "White wins: %v", symbol)
		}
		if symbol, won := e.CheckWinCondition(board.Black); won {
			logw.Infof(ctx, "Black wins: %v", symbol)
		}
	}
}

func printBoard(e *engine.Engine) {
	pos := e.Position()

	fmt.Println()
	for r := board.Rank(board.NumRanks - 1); ; r-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%2v ", r)
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			sq := board.NewSquare(f, r)
			if !sq.IsValid() {
				sb.WriteString(" . ")
				continue
			}
			if p, ok := pos.Piece(sq); ok {
				fmt.Fprintf(&sb, " %v ", p)
			} else {
				sb.WriteString(" - ")
			}
		}
		fmt.Println(sb.String())
		if r == 0 {
			break
		}
	}
	fmt.Print("   ")
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		fmt.Printf(" %v ", f)
	}
	fmt.Println()
	fmt.Printf("turn: %v\n\n", e.Turn())
}
