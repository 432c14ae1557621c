package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)

	g = append(g, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "journal entry",
	}, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "open goal",
	}, Glyph{
		Key:     "x",
		Symbol:  "✔",
		Meaning: "goal completed",
	}, Glyph{
		Key:     "o",
		Symbol:  "○",
		Meaning: "date",
	}, Glyph{
		Key:     "?",
		Symbol:  "?",
		Meaning: "unanswered",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int

const (
	Note Bullet = iota
	Goal
	Done
	Date
	Unanswered
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}
