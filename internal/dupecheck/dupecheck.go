// Package dupecheck runs a duplicate card check for one nation: fetch the
// deck, parse it, count copies and report the duplicates.
package dupecheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/admin/ns-dupecheck/internal/deck"
	"github.com/admin/ns-dupecheck/internal/report"
)

var (
	ErrFetch = errors.New("fetch failed")
	ErrParse = errors.New("parse failed")
)

type Fetcher interface {
	FetchDeck(ctx context.Context, identity, nation string) (string, error)
}

// Request names the nation to check. An empty OutputPath sends the report to
// the console in Format; files are always plain text.
type Request struct {
	Identity   string
	Nation     string
	OutputPath string
	Format     report.Format
}

type Result struct {
	NoCards  bool
	Rows     []deck.Row
	Written  string // report file, empty when the report went to the console
	WriteErr error
}

type Checker struct {
	Fetcher Fetcher
	Site    string
	Stdout  io.Writer
}

func (c *Checker) Run(ctx context.Context, req Request) (Result, error) {
	body, err := c.Fetcher.FetchDeck(ctx, req.Identity, req.Nation)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	log.Printf("fetched %d bytes for %s", len(body), req.Nation)

	cards, err := deck.Parse(body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if !cards.Deck.Owned() {
		if _, err := fmt.Fprintf(c.Stdout, "No cards found for %s.\n", req.Nation); err != nil {
			return Result{NoCards: true}, fmt.Errorf("write report: %w", err)
		}
		return Result{NoCards: true}, nil
	}

	rows := deck.Duplicates(deck.Count(c.Site, cards.Deck.Cards))
	log.Printf("%d cards, %d duplicated", len(cards.Deck.Cards), len(rows))
	res := Result{Rows: rows}

	if req.OutputPath == "" {
		if err := report.Render(c.Stdout, rows, req.Format); err != nil {
			return res, fmt.Errorf("write report: %w", err)
		}
		return res, nil
	}

	if writeErr := report.WriteFile(req.OutputPath, rows); writeErr != nil {
		log.Printf("report file: %v", writeErr)
		res.WriteErr = writeErr
		if _, err := fmt.Fprintf(c.Stdout, "Error writing output to file: %v.\nWriting to terminal instead.\n\n", writeErr); err != nil {
			return res, fmt.Errorf("write report: %w", err)
		}
		if err := report.Render(c.Stdout, rows, report.FormatText); err != nil {
			return res, fmt.Errorf("write report: %w", err)
		}
		return res, nil
	}

	res.Written = req.OutputPath
	if _, err := fmt.Fprintf(c.Stdout, "Output written to %s\n", req.OutputPath); err != nil {
		return res, fmt.Errorf("write report: %w", err)
	}
	return res, nil
}
