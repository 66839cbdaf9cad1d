package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"checkers/game"
	"checkers/gamemaster"

	"github.com/rs/zerolog/log"
)

var errQuit = errors.New("quit")

// Console plays one session against a human over text input and output.
type Console struct {
	session *gamemaster.Session
	in      *bufio.Scanner
	out     io.Writer
}

func NewConsole(session *gamemaster.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays until the game ends, the human quits or the input runs out.
func (c *Console) Run() error {
	fmt.Fprintf(c.out, "You play %s. Type 'rules' for the rules, 'quit' to leave.\n", c.session.Human)

	for {
		view := c.session.Snapshot()
		fmt.Fprint(c.out, Render(view.Board))

		if view.Outcome != nil {
			fmt.Fprintf(c.out, "Game over: %s.\n", view.Outcome)
			return nil
		}

		var err error
		if view.Turn == c.session.ComputerColor() {
			err = c.computerTurn()
		} else {
			err = c.humanTurn()
		}
		if errors.Is(err, errQuit) {
			fmt.Fprintln(c.out, "Bye.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) computerTurn() error {
	fmt.Fprintf(c.out, "%s is thinking...\n", c.session.ComputerColor())
	turn, err := c.session.Reply()
	if err != nil {
		return fmt.Errorf("computer failed to play: %w", err)
	}
	for _, res := range turn.Results {
		fmt.Fprintf(c.out, "%s moves %s\n", turn.Color, res.Move)
		if res.Regicide {
			fmt.Fprintln(c.out, "Regicide! The king was captured.")
		} else if res.Status == game.Promoted {
			fmt.Fprintln(c.out, "The piece is crowned.")
		}
	}
	return nil
}

// prompt reads one trimmed line, handling the commands available everywhere.
func (c *Console) prompt(question string) (string, error) {
	for {
		fmt.Fprint(c.out, question)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", err
			}
			return "", errQuit
		}
		line := strings.TrimSpace(c.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return "", errQuit
		case "rules":
			fmt.Fprintln(c.out, game.RulesText)
			continue
		}
		return line, nil
	}
}

func (c *Console) promptSquare(question string) (game.Square, error) {
	for {
		line, err := c.prompt(question)
		if err != nil {
			return game.Square{}, err
		}
		sq, err := ParseSquare(line)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		return sq, nil
	}
}

func (c *Console) humanTurn() error {
	from, err := c.promptSquare("Select a piece (row,col): ")
	if err != nil {
		return err
	}
	dests, err := c.session.Select(from)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return nil
	}
	if len(dests) == 0 {
		if view := c.session.Snapshot(); view.Board.HasCapture(view.Turn) {
			fmt.Fprintln(c.out, "You must make a capture this turn!")
		} else {
			fmt.Fprintln(c.out, "That piece has no legal moves.")
		}
		return nil
	}

	fmt.Fprint(c.out, Render(c.session.Snapshot().Board, dests...))
	fmt.Fprintf(c.out, "Legal moves: %s\n", formatSquares(dests))
	to, err := c.promptSquare("Move to (row,col): ")
	if err != nil {
		return err
	}
	res, err := c.session.Move(from, to)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return nil
	}
	c.report(res)
	return c.chain(res)
}

// chain offers follow-up jumps until the human stops or none remain.
func (c *Console) chain(res game.Result) error {
	for res.Status == game.ChainAvailable {
		answer, err := c.prompt(fmt.Sprintf("Jump again? Available: %s (y/n): ", formatSquares(res.Chain)))
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "n", "no":
			return c.session.EndChain()
		case "y", "yes":
		default:
			continue
		}

		to := res.Chain[0]
		if len(res.Chain) > 1 {
			if to, err = c.promptSquare("Jump to (row,col): "); err != nil {
				return err
			}
		}
		next, err := c.session.ContinueChain(to)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		res = next
		c.report(res)
	}
	return nil
}

func (c *Console) report(res game.Result) {
	log.Debug().Msgf("human played %s (%s)", res.Move, res.Status)
	if res.Captured != nil {
		fmt.Fprintf(c.out, "Captured the piece on %s.\n", res.Captured.Square)
	}
	if res.Regicide {
		fmt.Fprintln(c.out, "Regicide! Your piece took a king.")
	} else if res.Status == game.Promoted {
		fmt.Fprintln(c.out, "Your piece is crowned.")
	}
}
