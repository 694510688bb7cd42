package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is a single vocabulary entry. The Phonetic field holds a Russian
// transliteration of the English pronunciation, e.g. "хэллоу" for "hello".
type Word struct {
	ID       string `json:"id"`
	English  string `json:"english"`
	Russian  string `json:"russian"`
	Phonetic string `json:"phonetic"`
}

// Round is a fixed ordered set of words tested together in one quiz.
type Round struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Words []Word `json:"words"`
}

// Unit is a thematic vocabulary module composed of rounds.
// Icon is a display tag only; resolving it to something renderable is the
// client's job.
type Unit struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Icon   Icon    `json:"icon"`
	Rounds []Round `json:"rounds"`
}

// Catalog is the read-only unit/round/word content. Built once at startup,
// never mutated afterwards, safe for concurrent reads.
type Catalog struct {
	units   []Unit
	byID    map[string]*Unit
	wordIdx map[string]map[string]Word // unitID -> wordID -> Word
}

// New builds a Catalog from an ordered list of units.
func New(units []Unit) *Catalog {
	c := &Catalog{
		units:   units,
		byID:    make(map[string]*Unit, len(units)),
		wordIdx: make(map[string]map[string]Word, len(units)),
	}
	for i := range c.units {
		u := &c.units[i]
		c.byID[u.ID] = u
		words := make(map[string]Word)
		for _, r := range u.Rounds {
			for _, w := range r.Words {
				words[w.ID] = w
			}
		}
		c.wordIdx[u.ID] = words
	}
	return c
}

// Units returns all units in catalog order.
func (c *Catalog) Units() []Unit {
	return c.units
}

// Unit looks up a unit by id.
func (c *Catalog) Unit(unitID string) (Unit, bool) {
	u, ok := c.byID[unitID]
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// RoundWords returns the words of a round in their fixed order.
// Unknown unit or round ids yield an empty slice, never an error.
func (c *Catalog) RoundWords(unitID, roundID string) []Word {
	u, ok := c.byID[unitID]
	if !ok {
		return nil
	}
	for _, r := range u.Rounds {
		if r.ID == roundID {
			return r.Words
		}
	}
	return nil
}

// Word resolves a word id within a unit, searching all of the unit's rounds.
func (c *Catalog) Word(unitID, wordID string) (Word, bool) {
	w, ok := c.wordIdx[unitID][wordID]
	return w, ok
}

// UnitNumber extracts the numeric code from a unit id like "unit-2".
// The trailing dash-separated segment must parse as an integer; ids without
// one are rejected before any generation request is made.
func UnitNumber(unitID string) (int, error) {
	idx := strings.LastIndex(unitID, "-")
	if idx < 0 || idx == len(unitID)-1 {
		return 0, fmt.Errorf("unit id %q has no numeric code", unitID)
	}
	n, err := strconv.Atoi(unitID[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("unit id %q has no numeric code", unitID)
	}
	return n, nil
}
