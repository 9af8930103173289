package sfx

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Field layout markers. Every field occurrence looks like:
//
//	Start_Red NUMBER_VERSION_2
//	****1: 0.700000
const (
	VersionTag  = "NUMBER_VERSION_2"
	ValueMarker = "****1: "
)

// Missing is displayed in place of a value that was not found.
const Missing = "-"

type fieldPattern struct {
	key Key
	re  *regexp.Regexp
}

// fieldPatterns holds one compiled pattern per key in AllKeys order.
// Group 1 is the header up to and including the marker, group 2 the number.
// The line break may be LF or CRLF and is kept as found on rewrite.
var fieldPatterns = compilePatterns()

func compilePatterns() []fieldPattern {
	keys := AllKeys()
	patterns := make([]fieldPattern, 0, len(keys))
	for _, k := range keys {
		expr := `(` + regexp.QuoteMeta(k.String()+" "+VersionTag) + `\r?\n` +
			regexp.QuoteMeta(ValueMarker) + `)(\d+\.\d+)`
		patterns = append(patterns, fieldPattern{key: k, re: regexp.MustCompile(expr)})
	}
	return patterns
}

// Occurrence is one matched field in a document.
type Occurrence struct {
	Key   Key
	Value float64
	Start int // byte offset of the numeric literal
	End   int // byte offset just past the numeric literal
	Line  int // 1-based line of the numeric literal
}

// Extract returns the value of the first occurrence of every field key found
// in doc. Keys that do not occur are omitted.
func Extract(doc string) Values {
	values := make(Values, len(fieldPatterns))
	for _, p := range fieldPatterns {
		m := p.re.FindStringSubmatch(doc)
		if m == nil {
			continue
		}
		v, ok := parseValue(m[2])
		if !ok {
			continue
		}
		values[p.key] = v
	}
	return values
}

// Write returns doc with the numeric literal of every occurrence of every key
// replaced by its channel's value from c. Start, End and Transition of a
// channel all receive the same value. Keys that do not occur are not added and
// all other text is left untouched.
func Write(doc string, c Color) string {
	for _, p := range fieldPatterns {
		doc = p.re.ReplaceAllString(doc, "${1}"+FormatValue(c[p.key.Channel]))
	}
	return doc
}

// Find returns every field occurrence in doc ordered by position.
func Find(doc string) []Occurrence {
	var out []Occurrence
	for _, p := range fieldPatterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(doc, -1) {
			start, end := idx[4], idx[5]
			v, ok := parseValue(doc[start:end])
			if !ok {
				continue
			}
			out = append(out, Occurrence{
				Key:   p.key,
				Value: v,
				Start: start,
				End:   end,
				Line:  strings.Count(doc[:start], "\n") + 1,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// FormatValue formats a value the way it is written to the file.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// FormatDisplay formats a value for on-screen display.
func FormatDisplay(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatLookup formats the value for key, or Missing when absent.
func (v Values) FormatLookup(frame Keyframe, ch Channel) string {
	val, ok := v.Get(frame, ch)
	if !ok {
		return Missing
	}
	return FormatDisplay(val)
}

// StartColor returns the Start_* values found in v. Channels without a
// Start value keep the value from fallback.
func (v Values) StartColor(fallback Color) Color {
	c := fallback
	for _, ch := range Channels {
		if val, ok := v.Get(Start, ch); ok {
			c[ch] = val
		}
	}
	return c
}

// parseValue parses a matched literal. Overlong literals saturate to
// infinity rather than being dropped.
func parseValue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
