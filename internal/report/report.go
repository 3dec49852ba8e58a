// Package report writes duplicate card reports.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/admin/ns-dupecheck/internal/deck"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", s, FormatText, FormatYAML)
	}
}

// Render writes rows to w. Text output is one "<url>: <count>" line per row.
func Render(w io.Writer, rows []deck.Row, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, rows)
	case FormatYAML:
		if len(rows) == 0 {
			return nil
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, rows []deck.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s: %d\n", r.URL, r.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the text report to path. The report is staged in a
// temporary file next to path and renamed over it, so a failed write never
// leaves a partial report behind.
func WriteFile(path string, rows []deck.Row) error {
	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	out, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := writeText(out, rows); err != nil {
		out.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
