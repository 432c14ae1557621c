package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/recovery/pkg/glyph"
	"tableflip.dev/recovery/pkg/record"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("m3kx90abcde171df  "))
)

const stampLayout = "Jan 2, 2006 15:04"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Records prints a collection newest first, one line per record, with the
// bullet chosen by the collection kind and completion state.
func (pp *PrettyPrint) Records(kind repo.Kind, records ...record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range records {
		if pp.ShowID {
			_, _ = y.Print(r.ID)
			if pad := len(spacing) - len(r.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		bullet := glyph.Note
		text := firstLine(r.Text)
		if kind.Completable {
			bullet = glyph.Goal
			if r.Completed {
				bullet = glyph.Done
				text = glyph.Strike(text)
			}
		}
		_, _ = t.Printf("%s %s ", bullet.String(), text)
		_, _ = d.Printf("(%s)\n", r.Timestamp.Local().Format(stampLayout))
	}
	_, _ = t.Println("")
}

// Sober prints the ticking counter line for the sobriety clock and the
// date command.
func (pp *PrettyPrint) Sober(start time.Time) {
	b := color.New(color.Bold)
	c := color.New(color.Faint)

	elapsed := timeutil.Since(start, time.Now())
	_, _ = b.Printf("%d days %02d:%02d:%02d", elapsed.Days, elapsed.Hours, elapsed.Minutes, elapsed.Seconds)
	_, _ = c.Printf("  sober since %s\n", start.Local().Format("January 2, 2006"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
