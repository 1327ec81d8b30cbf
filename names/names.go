// Package names maps color names to hex literals and back.
package names

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

var ErrUnknownName = errors.New("unknown color name")

// Lookup resolves names to lowercase #rrggbb literals and back.
type Lookup interface {
	HexOf(name string) (string, bool)
	NameOf(hex string) (string, bool)
}

// Table is an immutable name dictionary. Names match case-insensitively.
type Table struct {
	byName map[string]string
	byHex  map[string]string
}

var fold = cases.Fold()

func key(name string) string {
	return fold.String(strings.TrimSpace(name))
}

// NewTable builds a table from name to hex entries. Hex values are
// lower-cased. When several names share a hex value, the reverse lookup
// returns the one sorting first.
func NewTable(entries map[string]string) *Table {
	t := &Table{
		byName: make(map[string]string, len(entries)),
		byHex:  make(map[string]string, len(entries)),
	}
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		hex := strings.ToLower(entries[name])
		t.byName[key(name)] = hex
		if _, ok := t.byHex[hex]; !ok {
			t.byHex[hex] = name
		}
	}
	return t
}

func (t *Table) HexOf(name string) (string, bool) {
	hex, ok := t.byName[key(name)]
	return hex, ok
}

func (t *Table) NameOf(hex string) (string, bool) {
	name, ok := t.byHex[strings.ToLower(hex)]
	return name, ok
}

func (t *Table) Len() int { return len(t.byName) }

// Chain consults each table in order; the first hit wins.
type Chain []Lookup

func (c Chain) HexOf(name string) (string, bool) {
	for _, l := range c {
		if hex, ok := l.HexOf(name); ok {
			return hex, true
		}
	}
	return "", false
}

func (c Chain) NameOf(hex string) (string, bool) {
	for _, l := range c {
		if name, ok := l.NameOf(hex); ok {
			return name, true
		}
	}
	return "", false
}

// W3CX11 holds the SVG 1.1 / CSS named colors.
var W3CX11 = func() *Table {
	entries := make(map[string]string, len(colornames.Map))
	for name, c := range colornames.Map {
		entries[name] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return NewTable(entries)
}()

// Traditional holds a selection of Chinese traditional color names.
var Traditional = NewTable(map[string]string{
	"乳白":   "#f9f4dc",
	"杏仁黄":  "#f7e8aa",
	"茉莉黄":  "#f8df72",
	"麦秆黄":  "#f8df70",
	"油菜花黄": "#fbda41",
	"月白":   "#eef7f2",
	"水绿":   "#8cc269",
	"胭脂红":  "#f03f24",
	"海棠红":  "#f03752",
	"牡丹粉红": "#eea2a4",
	"靛青":   "#1661ab",
	"墨黑":   "#161823",
})

// Default checks W3CX11 first, then Traditional.
var Default Lookup = Chain{W3CX11, Traditional}

// Hex resolves name against the default tables.
func Hex(name string) (string, error) {
	if hex, ok := Default.HexOf(name); ok {
		return hex, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
}
