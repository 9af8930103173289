// Utility functions for the SFX editor.
package main

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// segment is a run of viewer text on one line. Highlighted segments are
// field values and carry their channel.
type segment struct {
	text      string
	highlight bool
	channel   sfx.Channel
}

// viewerLine is one rendered line of the document viewer.
type viewerLine []segment

// buildViewerLines splits doc into lines of segments, cutting out every
// occurrence span as a highlighted segment. occs must be sorted by Start.
func buildViewerLines(doc string, occs []sfx.Occurrence) []viewerLine {
	lines := []viewerLine{nil}

	addPlain := func(s string) {
		for {
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				break
			}
			if part := displayText(s[:i]); part != "" {
				lines[len(lines)-1] = append(lines[len(lines)-1], segment{text: part})
			}
			lines = append(lines, nil)
			s = s[i+1:]
		}
		if part := displayText(s); part != "" {
			lines[len(lines)-1] = append(lines[len(lines)-1], segment{text: part})
		}
	}

	pos := 0
	for _, o := range occs {
		if o.Start < pos || o.End > len(doc) {
			continue
		}
		addPlain(doc[pos:o.Start])
		lines[len(lines)-1] = append(lines[len(lines)-1], segment{
			text:      doc[o.Start:o.End],
			highlight: true,
			channel:   o.Key.Channel,
		})
		pos = o.End
	}
	addPlain(doc[pos:])

	return lines
}

// displayText makes raw document bytes printable. Asset dumps are not
// always UTF-8; invalid input is decoded as Windows-1252. Control
// characters other than tab are shown as dots and carriage returns are
// dropped.
func displayText(s string) string {
	if s == "" {
		return s
	}
	if !utf8.ValidString(s) {
		if decoded, err := charmap.Windows1252.NewDecoder().String(s); err == nil {
			s = decoded
		}
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\r':
			return -1
		case r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return '.'
		}
		return r
	}, s)
}
