package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Row is one duplicated card and how many copies are held.
type Row struct {
	URL   string `yaml:"url"`
	Count int    `yaml:"count"`
}

// CardURL is the deck page of a card on site, and the key cards are
// counted by.
func CardURL(site string, c Card) string {
	return fmt.Sprintf("%s/page=deck/card=%d/season=%d", strings.TrimRight(site, "/"), c.ID, c.Season)
}

func Count(site string, cards []Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[CardURL(site, c)]++
	}
	return counts
}

// Duplicates returns the entries of counts held more than once, most
// copies first. Equal counts are ordered by URL.
func Duplicates(counts map[string]int) []Row {
	rows := []Row{}
	for url, n := range counts {
		if n > 1 {
			rows = append(rows, Row{URL: url, Count: n})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].URL < rows[j].URL
	})
	return rows
}
