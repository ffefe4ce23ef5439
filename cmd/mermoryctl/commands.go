package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mermory-server/internal/api/grpc/apiv1"
)

type cli struct {
	decks   *apiv1.DecksClient
	study   *apiv1.StudyClient
	in      io.Reader
	out     io.Writer
	timeout time.Duration
	json    bool
}

type command struct {
	args int
	opt  int
	run  func(c *cli, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"decks":       {args: 0, opt: 1, run: (*cli).listDecks},
	"deck":        {args: 1, run: (*cli).getDeck},
	"create-deck": {args: 1, opt: 1, run: (*cli).createDeck},
	"update-deck": {args: 2, opt: 1, run: (*cli).updateDeck},
	"delete-deck": {args: 1, run: (*cli).deleteDeck},
	"add-card":    {args: 3, run: (*cli).addCard},
	"update-card": {args: 4, run: (*cli).updateCard},
	"delete-card": {args: 2, run: (*cli).deleteCard},
	"study":       {args: 1, run: (*cli).studyDeck},
}

func (c *cli) dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) < cmd.args || len(args) > cmd.args+cmd.opt {
		return fmt.Errorf("%s: wrong number of arguments (see --help)", name)
	}
	if err := cmd.run(c, ctx, args); err != nil {
		if st, ok := status.FromError(err); ok {
			return fmt.Errorf("%s: %s", st.Code(), st.Message())
		}
		return err
	}
	return nil
}

// call bounds a single RPC by the configured timeout.
func (c *cli) call(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) listDecks(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	resp, err := c.decks.ListDecks(ctx, &apiv1.ListDecksRequest{Query: optional(args, 0)})
	if err != nil {
		return err
	}
	if c.json {
		return c.printJSON(resp.Decks)
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCARDS\tLAST STUDIED")
	for _, d := range resp.Decks {
		last := "never"
		if d.LastStudied != nil {
			last = d.LastStudied.Local().Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.ID, d.Title, d.CardCount, last)
	}
	return w.Flush()
}

func (c *cli) getDeck(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	resp, err := c.decks.GetDeck(ctx, &apiv1.GetDeckRequest{DeckID: args[0]})
	if err != nil {
		return err
	}
	if c.json {
		return c.printJSON(resp.Deck)
	}

	d := resp.Deck
	fmt.Fprintf(c.out, "%s (%s)\n", d.Title, d.ID)
	if d.Description != "" {
		fmt.Fprintln(c.out, d.Description)
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFRONT\tBACK")
	for _, card := range d.Cards {
		fmt.Fprintf(w, "%s\t%s\t%s\n", card.ID, card.Front, card.Back)
	}
	return w.Flush()
}

func (c *cli) createDeck(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	resp, err := c.decks.CreateDeck(ctx, &apiv1.CreateDeckRequest{
		Title:       args[0],
		Description: optional(args, 1),
	})
	if err != nil {
		return err
	}
	if c.json {
		return c.printJSON(resp.Deck)
	}
	_, err = fmt.Fprintln(c.out, resp.Deck.ID)
	return err
}

func (c *cli) updateDeck(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	resp, err := c.decks.UpdateDeck(ctx, &apiv1.UpdateDeckRequest{
		DeckID:      args[0],
		Title:       args[1],
		Description: optional(args, 2),
	})
	if err != nil {
		return err
	}
	if c.json {
		return c.printJSON(resp.Deck)
	}
	_, err = fmt.Fprintln(c.out, resp.Deck.ID)
	return err
}

func (c *cli) deleteDeck(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	_, err := c.decks.DeleteDeck(ctx, &apiv1.DeleteDeckRequest{DeckID: args[0]})
	return err
}

func (c *cli) addCard(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	resp, err := c.decks.AddCard(ctx, &apiv1.AddCardRequest{DeckID: args[0], Front: args[1], Back: args[2]})
	if err != nil {
		return err
	}
	if c.json {
		return c.printJSON(resp.Card)
	}
	_, err = fmt.Fprintln(c.out, resp.Card.ID)
	return err
}

func (c *cli) updateCard(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	resp, err := c.decks.UpdateCard(ctx, &apiv1.UpdateCardRequest{
		DeckID: args[0],
		CardID: args[1],
		Front:  args[2],
		Back:   args[3],
	})
	if err != nil {
		return err
	}
	if c.json {
		return c.printJSON(resp.Card)
	}
	_, err = fmt.Fprintln(c.out, resp.Card.ID)
	return err
}

func (c *cli) deleteCard(ctx context.Context, args []string) error {
	ctx, cancel := c.call(ctx)
	defer cancel()

	_, err := c.decks.DeleteCard(ctx, &apiv1.DeleteCardRequest{DeckID: args[0], CardID: args[1]})
	return err
}

const studyHelp = "[f]lip  [n]ext  [p]revious  [k]nown  [r]eview later  re[s]tart  [q]uit"

// studyDeck runs an interactive session, one command per input line. The
// session is ended on the server when input runs out or on quit.
func (c *cli) studyDeck(ctx context.Context, args []string) error {
	start, cancel := c.call(ctx)
	resp, err := c.study.StartSession(start, &apiv1.StartSessionRequest{DeckID: args[0]})
	cancel()
	if err != nil {
		return err
	}

	sess := resp.Session
	req := &apiv1.SessionRequest{SessionID: sess.ID}
	defer func() {
		end, cancel := c.call(context.WithoutCancel(ctx))
		defer cancel()
		_, _ = c.study.EndSession(end, req)
	}()

	fmt.Fprintf(c.out, "studying %s, %d cards\n%s\n", sess.DeckTitle, sess.CardCount, studyHelp)
	c.render(sess)

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		var step func(context.Context, *apiv1.SessionRequest, ...grpc.CallOption) (*apiv1.SessionResponse, error)
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "f", "flip", "":
			step = c.study.Flip
		case "n", "next":
			step = c.study.Next
		case "p", "prev", "previous":
			step = c.study.Previous
		case "k", "known":
			step = c.study.MarkKnown
		case "r", "review":
			step = c.study.MarkReviewLater
		case "s", "restart":
			step = c.study.Restart
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(c.out, studyHelp)
			continue
		}

		callCtx, cancel := c.call(ctx)
		resp, err := step(callCtx, req)
		cancel()
		if err != nil {
			if status.Code(err) == codes.FailedPrecondition {
				fmt.Fprintln(c.out, "session complete: [s] to restart, [q] to quit")
				continue
			}
			return err
		}
		c.render(resp.Session)
	}
}

func (c *cli) render(s *apiv1.Session) {
	if s.State == "complete" {
		sum := s.Summary
		fmt.Fprintf(c.out, "done: %d known, %d to review, %d skipped (%.0f%%)",
			sum.Known, sum.ReviewLater, sum.Skipped, sum.CompletionRate*100)
		if sum.Elapsed != "" {
			fmt.Fprintf(c.out, " in %s", sum.Elapsed)
		}
		fmt.Fprintln(c.out)
		return
	}

	side, text := "Q", s.Card.Front
	if s.IsFlipped {
		side, text = "A", s.Card.Back
	}
	fmt.Fprintf(c.out, "[%d/%d %.0f%%] %s: %s\n", s.CurrentIndex+1, s.CardCount, s.ProgressPercent, side, text)
}
