// Package deck decodes NationStates card deck responses and finds the
// cards a nation holds more than once.
package deck

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Card is one copy of a trading card. Two copies with the same ID and
// season are the same card.
type Card struct {
	ID     uint32
	Season uint8
}

// Deck holds the cards of a nation in response order. Cards is nil when
// the DECK element carried no CARD children.
type Deck struct {
	Cards []Card
}

func (d Deck) Owned() bool {
	return d.Cards != nil
}

// Cards is the root CARDS document of a "cards deck" query.
type Cards struct {
	XMLName xml.Name `xml:"CARDS"`
	Deck    *Deck    `xml:"DECK"`
}

type cardXML struct {
	ID     *string `xml:"CARDID"`
	Season *string `xml:"SEASON"`
}

type deckXML struct {
	Cards []cardXML `xml:"CARD"`
}

func (d *Deck) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw deckXML
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}
	if len(raw.Cards) == 0 {
		d.Cards = nil
		return nil
	}

	cards := make([]Card, 0, len(raw.Cards))
	for i, c := range raw.Cards {
		if c.ID == nil {
			return fmt.Errorf("card %d: missing CARDID", i+1)
		}
		if c.Season == nil {
			return fmt.Errorf("card %d: missing SEASON", i+1)
		}
		id, err := strconv.ParseUint(strings.TrimSpace(*c.ID), 10, 32)
		if err != nil {
			return fmt.Errorf("card %d: CARDID: %w", i+1, err)
		}
		season, err := strconv.ParseUint(strings.TrimSpace(*c.Season), 10, 8)
		if err != nil {
			return fmt.Errorf("card %d: SEASON: %w", i+1, err)
		}
		cards = append(cards, Card{ID: uint32(id), Season: uint8(season)})
	}
	d.Cards = cards
	return nil
}

type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse deck: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

var errNoDeck = errors.New("missing DECK element")

// Parse decodes a "cards deck" API response.
func Parse(body string) (Cards, error) {
	var doc Cards
	if err := xml.NewDecoder(strings.NewReader(body)).Decode(&doc); err != nil {
		return Cards{}, &ParseError{Err: err}
	}
	if doc.Deck == nil {
		return Cards{}, &ParseError{Err: errNoDeck}
	}
	return doc, nil
}
