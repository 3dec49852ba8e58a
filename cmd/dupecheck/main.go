package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/admin/ns-dupecheck/internal/config"
	"github.com/admin/ns-dupecheck/internal/dupecheck"
	"github.com/admin/ns-dupecheck/internal/nsapi"
	"github.com/admin/ns-dupecheck/internal/prompt"
	"github.com/admin/ns-dupecheck/internal/report"
)

const (
	exitOK     = 0
	exitInput  = 1
	exitFetch  = 2
	exitParse  = 3
	exitOutput = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("dupecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var user, nation, output string
	fs.StringVar(&user, "user", "", "your main nation or ns email address")
	fs.StringVar(&user, "u", "", "shorthand for -user")
	fs.StringVar(&nation, "nation", "", "the nation that you would like to check for duplicates")
	fs.StringVar(&nation, "n", "", "shorthand for -nation")
	fs.StringVar(&output, "output", cfg.OutputPath, "file to write the report to")
	fs.StringVar(&output, "o", cfg.OutputPath, "shorthand for -output")
	toStdout := fs.Bool("stdout", false, "print the report instead of writing a file")
	formatName := fs.String("format", string(report.FormatText), "console report format: text or yaml")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitInput
	}

	log.SetPrefix(fmt.Sprintf("dupecheck[%s] ", uuid.NewString()[:8]))
	if *verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	format, err := report.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInput
	}
	if format != report.FormatText && !*toStdout {
		fmt.Fprintf(stderr, "Error: -format %s requires -stdout\n", format)
		return exitInput
	}

	if user == "" {
		user = cfg.UserAgent
	}
	if nation == "" {
		nation = cfg.Nation
	}

	resolver := prompt.NewResolver(stdin, stdout)
	if user, err = resolver.Resolve(user, "main nation"); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInput
	}
	if nation, err = resolver.Resolve(nation, "target nation"); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInput
	}

	req := dupecheck.Request{Identity: user, Nation: nation, OutputPath: output, Format: format}
	if *toStdout {
		req.OutputPath = ""
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	checker := &dupecheck.Checker{
		Fetcher: nsapi.NewClient(cfg.APIURL),
		Site:    cfg.SiteURL,
		Stdout:  stdout,
	}
	if _, err := checker.Run(ctx, req); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, dupecheck.ErrFetch):
		return exitFetch
	case errors.Is(err, dupecheck.ErrParse):
		return exitParse
	default:
		return exitOutput
	}
}
