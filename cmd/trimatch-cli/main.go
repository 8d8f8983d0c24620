// Command trimatch-cli plays a game of TriMatch against the engine in
// the terminal. The engine is player 1, the human player 2.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/trimatchhq/trimatch-backend/internal/solver"
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

const helpText = `
TriMatch Help
=============
Game Rules:
  - 3x3 grid, cols a-b-c, rows 1-2-3
  - Tiles: N=Noble, K=Knight, M=Mystic; each player holds 3 of each
  - On your turn, place on empty or replace a lower rank tile (e.g., Mb2)
  - Win by making three of the same rank in a line (e.g., N-N-N)
  - Lose immediately if you complete an N-K-M (any order) line

Commands:
  q     Quit game
  n, n1 New game (engine starts)
  n2    New game (you start)
  m     Show move history
  u     Undo last two moves (engine's + your last)
  d     Show current engine depth
  d#    Set engine lookahead depth to #
  h     Hint for your best move
  ?     Show this help text
`

func main() {
	depth := flag.Int("depth", trimatch.DefaultDepth, "engine lookahead depth (1-10)")
	start := flag.String("start", "engine", "who makes the first move: engine or human")
	flag.Parse()

	cli := &game{
		session: newSession(*start, *depth),
		starter: starterFor(*start),
		reader:  bufio.NewScanner(os.Stdin),
	}

	cli.run()
}

const engineSide = trimatch.PlayerOne

type game struct {
	session *trimatch.Session
	starter trimatch.Player
	reader  *bufio.Scanner
}

func starterFor(start string) trimatch.Player {
	if strings.EqualFold(start, "human") {
		return trimatch.PlayerTwo
	}
	return trimatch.PlayerOne
}

func newSession(start string, depth int) *trimatch.Session {
	return trimatch.NewSession(starterFor(start), depth)
}

func (that *game) run() {
	for {
		that.printBoard()

		if that.session.Board.InProgress() && that.session.Board.Turn == engineSide {
			if err := that.engineMove(); err != nil {
				fmt.Println("engine error:", err)
				return
			}
			continue
		}

		fmt.Print("Player 2 > ")
		if !that.reader.Scan() {
			return
		}
		cmd := strings.ToLower(strings.TrimSpace(that.reader.Text()))

		if cmd == "q" {
			fmt.Println("Quitting game.")
			return
		}
		if that.handleCommand(cmd) {
			continue
		}
		that.handleMove(cmd)
	}
}

// handleCommand runs a non-move command and reports whether cmd was one.
func (that *game) handleCommand(cmd string) bool {
	switch {
	case cmd == "n" || cmd == "n1":
		that.starter = trimatch.PlayerOne
		that.session = trimatch.NewSession(that.starter, that.session.Depth)
	case cmd == "n2":
		that.starter = trimatch.PlayerTwo
		that.session = trimatch.NewSession(that.starter, that.session.Depth)
	case cmd == "m":
		that.printHistory()
	case cmd == "u":
		if err := that.session.Undo(2); err != nil {
			fmt.Println("Nothing to undo.")
		} else {
			fmt.Println("Last two moves undone; back to your turn.")
		}
	case cmd == "d":
		fmt.Printf("Engine difficulty is depth %d\n", that.session.Depth)
	case strings.HasPrefix(cmd, "d") && len(cmd) > 1:
		depth, err := strconv.Atoi(cmd[1:])
		if err != nil {
			return false
		}
		if err = that.session.SetDepth(depth); err != nil {
			fmt.Printf("Depth must be between %d and %d.\n", trimatch.MinDepth, trimatch.MaxDepth)
		} else {
			fmt.Printf("Engine difficulty set to depth %d\n", depth)
		}
	case cmd == "h":
		that.printHint()
	case cmd == "?":
		fmt.Printf("%s\n", helpText)
	default:
		return false
	}
	return true
}

func (that *game) handleMove(cmd string) {
	if !that.session.Board.InProgress() {
		fmt.Println("Game over. Enter 'n' to start a new game.")
		return
	}

	move, err := parseMove(cmd, trimatch.PlayerTwo)
	if err != nil {
		fmt.Println("Invalid input: enter a move like 'Mb2' or a command (q, n, n1, n2, m, h, u, d, d#, ?).")
		return
	}

	if _, err = that.session.ApplyMove(move); err != nil {
		fmt.Println("Invalid move:", err)
		return
	}

	that.announceOutcome(trimatch.PlayerTwo)
}

func (that *game) engineMove() error {
	move, err := solver.BestMove(that.session.Board, that.session.Depth)
	if err != nil {
		return err
	}

	fmt.Printf("Player 1 (Computer) > %s\n", move)

	if _, err = that.session.ApplyMove(move); err != nil {
		return err
	}

	that.announceOutcome(engineSide)
	return nil
}

func (that *game) announceOutcome(mover trimatch.Player) {
	switch that.session.Board.Status {
	case trimatch.StatusWin:
		if mover == engineSide {
			fmt.Println("Computer wins with a three-of-a-kind! You lose!")
		} else {
			fmt.Println("You win with a three-of-a-kind! Computer loses!")
		}
	case trimatch.StatusLoss:
		if mover == engineSide {
			fmt.Println("Computer loses by forming an N-K-M line! You win!")
		} else {
			fmt.Println("You lose by forming an N-K-M line! Computer wins!")
		}
	case trimatch.StatusDraw:
		fmt.Println("Game ends in a draw.")
	}
}

func (that *game) printHint() {
	board := that.session.Board
	if !board.InProgress() || board.Turn != trimatch.PlayerTwo {
		fmt.Println("Help is only available on your turn in an ongoing game.")
		return
	}

	move, err := solver.BestMove(board, trimatch.MaxDepth)
	if err != nil {
		fmt.Println("No hint available:", err)
		return
	}

	fmt.Println("Suggested move:", move)
}

func (that *game) printHistory() {
	entries := that.session.History()
	if len(entries) == 0 {
		fmt.Println("No moves made yet.")
		return
	}
	for i, entry := range entries {
		fmt.Printf("%d. %s: %s\n", i+1, entry.Move.Player, entry.Move)
	}
}

func (that *game) printBoard() {
	board := that.session.Board

	fmt.Println("    a    b    c")
	fmt.Println("  +----+----+----+")
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			tile := board.Cells[row*3+col]
			if tile.IsEmpty() {
				cells[col] = "  "
			} else {
				cells[col] = tile.Label()
			}
		}
		fmt.Printf("%d | %s | %s | %s |\n", 3-row, cells[0], cells[1], cells[2])
		fmt.Println("  +----+----+----+")
	}
}

// parseMove reads the original "Mb2" notation: rank letter then cell.
func parseMove(cmd string, player trimatch.Player) (trimatch.Move, error) {
	if len(cmd) != 3 {
		return trimatch.Move{}, fmt.Errorf("malformed move %q", cmd)
	}

	rank, err := trimatch.ParseRank(cmd[:1])
	if err != nil {
		return trimatch.Move{}, err
	}

	cell, err := trimatch.ParseCell(cmd[1:])
	if err != nil {
		return trimatch.Move{}, err
	}

	return trimatch.Move{Cell: cell, Rank: rank, Player: player}, nil
}
