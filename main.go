package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"santorini/internal/game"
	"santorini/internal/shared"
)

var errQuit = errors.New("quit")

func main() {
	app := &cli.App{
		Name:  "santorini",
		Usage: "play a hot-seat game in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "p1", Value: "Player 1", Usage: "first player's name"},
			&cli.StringFlag{Name: "p2", Value: "Player 2", Usage: "second player's name"},
			&cli.StringFlag{Name: "god1", Value: game.GodArtemis, Usage: "first player's god"},
			&cli.StringFlag{Name: "god2", Value: game.GodDemeter, Usage: "second player's god"},
			&cli.IntFlag{Name: "tokens", Value: game.DefaultStartingTokens, Usage: "starting tokens"},
			&cli.StringFlag{Name: "shop", Value: string(game.ShopEveryTurn), Usage: "shop policy: every_turn or first_turn"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for time based"},
			&cli.BoolFlag{Name: "json", Usage: "print the final state as JSON"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	policy, err := game.ParseShopPolicy(c.String("shop"))
	if err != nil {
		return err
	}
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e, err := game.NewEngine([2]game.PlayerDef{
		{Name: c.String("p1"), God: c.String("god1")},
		{Name: c.String("p2"), God: c.String("god2")},
	}, game.Options{
		StartingTokens: c.Int("tokens"),
		ShopPolicy:     policy,
		Rand:           rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}
	e.StartTurn()

	// Engine logs go to stderr; keep the board readable.
	log.SetOutput(io.Discard)
	play(e, os.Stdin, os.Stdout)

	if c.Bool("json") {
		js, _ := json.MarshalIndent(shared.FromEngine("local", e), "", "  ")
		fmt.Println(string(js))
	}
	return nil
}

func play(e *game.Engine, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for e.Winner() == nil {
		printState(out, e)
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return
		}
		if err := execute(e, sc.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			fmt.Fprintln(out, "error:", err)
		}
	}
	printBoard(out, e.Board())
	fmt.Fprintf(out, "\n%s wins!\n", e.Winner().Name)
}

// execute runs one line of input. Coordinates are 1-based "row col".
func execute(e *game.Engine, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit", "exit":
		return errQuit
	case "god":
		return e.UseGodPower()
	case "skip":
		return e.SkipGodPower()
	case "done":
		e.CloseShop()
		return nil
	case "buy":
		if len(fields) != 2 {
			return errors.New("usage: buy <trident|thunderbolt>")
		}
		_, err := e.BuyArtifact(fields[1])
		return err
	case "use":
		if len(fields) != 2 {
			return errors.New("usage: use <n>")
		}
		n, err := strconv.Atoi(fields[1])
		held := e.CurrentPlayer().Artifacts()
		if err != nil || n < 1 || n > len(held) {
			return fmt.Errorf("no artifact %q", fields[1])
		}
		return e.UseArtifact(held[n-1].ID())
	}

	if len(fields) != 2 {
		return fmt.Errorf("unknown command %q", line)
	}
	r, err1 := strconv.Atoi(fields[0])
	c, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("unknown command %q", line)
	}
	e.HandleClick(r-1, c-1)
	return nil
}

func printState(out io.Writer, e *game.Engine) {
	p := e.CurrentPlayer()
	fmt.Fprintf(out, "\nTurn: %s (%s, %s) tokens=%d phase=%s\n",
		p.Name, p.Color, p.God.Name(), p.Tokens(), e.TurnState().Phase())
	printBoard(out, e.Board())

	if e.ShopOpen() {
		fmt.Fprintln(out, "Shop is open:")
		for _, o := range e.Catalog() {
			fmt.Fprintf(out, "  buy %-12s %d tokens  %s\n", o.Kind, o.Cost, o.Description)
		}
		fmt.Fprintln(out, "  done          leave the shop")
		return
	}
	for i, a := range p.Artifacts() {
		fmt.Fprintf(out, "  use %d  %s\n", i+1, a.Name())
	}
	fmt.Fprintln(out, "Commands: <row> <col>, god, skip, quit")
}

// printBoard draws each cell as level, then worker (A/B for the two
// players), then a mark: * highlighted, ^ selected. Domes show as D and
// flooded cells as ~.
func printBoard(out io.Writer, b *game.Board) {
	fmt.Fprint(out, "   ")
	for c := 0; c < b.Cols(); c++ {
		fmt.Fprintf(out, " %-3d", c+1)
	}
	fmt.Fprintln(out)

	for r := 0; r < b.Rows(); r++ {
		fmt.Fprintf(out, "%2d ", r+1)
		for c := 0; c < b.Cols(); c++ {
			fmt.Fprintf(out, " %-3s", cellGlyph(b.Cell(r, c)))
		}
		fmt.Fprintln(out)
	}
}

func cellGlyph(c *game.Cell) string {
	var sb strings.Builder
	switch {
	case c.Flooded():
		sb.WriteByte('~')
	case c.HasDome():
		sb.WriteByte('D')
	default:
		sb.WriteString(strconv.Itoa(c.Level()))
	}
	if w := c.Occupant(); w != nil {
		sb.WriteByte(byte('A' + w.Owner))
	}
	switch c.Status() {
	case game.StatusHighlighted:
		sb.WriteByte('*')
	case game.StatusSelected:
		sb.WriteByte('^')
	}
	return sb.String()
}
