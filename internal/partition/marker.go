// Package partition encodes, decodes and rewrites the partition marker that
// Krakatoa embeds in particle cache filenames.
//
// A frame of a particle cache may be split into several files. Each one
// carries a marker of the form
//
//	_part<CURRENT>of<TOTAL>_
//
// where CURRENT is zero-padded to the digit count of TOTAL and TOTAL is
// written without padding, e.g. "render_part003of120_0042.prt".
//
// All functions in this package are pure string transformations and are
// safe for concurrent use.
package partition

import (
	"strconv"
	"strings"
)

const (
	markerPrefix = "_part"
	markerOf     = "of"
	markerSuffix = "_"

	// WildcardGlyph replaces the current index in the wildcard form of a marker.
	WildcardGlyph = "*"
)

// Info is the parsed content of a partition marker.
type Info struct {
	// Current is the index of this partition. No range is implied.
	Current int `json:"current"`

	// Total is the number of partitions in the sequence.
	Total int `json:"total"`
}

// Width returns the number of digits Current is padded to when encoded.
func (i Info) Width() int {
	return len(strconv.Itoa(i.Total))
}

// Marker encodes the info as a marker string.
func (i Info) Marker() string {
	return FormatMarker(i.Current, i.Total)
}

// FormatMarker returns "_part<current>of<total>_" with current zero-padded
// to the digit count of total. current must not be negative.
func FormatMarker(current, total int) string {
	t := strconv.Itoa(total)
	return formatMarker(zeroPad(strconv.Itoa(current), len(t)), t)
}

func formatMarker(current, total string) string {
	var b strings.Builder
	b.Grow(len(markerPrefix) + len(current) + len(total) + len(markerOf) + len(markerSuffix))
	b.WriteString(markerPrefix)
	b.WriteString(current)
	b.WriteString(markerOf)
	b.WriteString(total)
	b.WriteString(markerSuffix)
	return b.String()
}

// match locates a marker inside a name. Offsets are byte positions into the
// scanned string; [start, end) covers the whole marker including both
// underscores.
type match struct {
	start, end       int
	curStart, curEnd int
	totStart, totEnd int
	wildcard         bool
}

func (m match) current(name string) string { return name[m.curStart:m.curEnd] }
func (m match) total(name string) string   { return name[m.totStart:m.totEnd] }

// find returns the leftmost marker in name. With allowWildcard set, a
// "_part*of<digits>_" marker is accepted as well.
func find(name string, allowWildcard bool) (match, bool) {
	offset := 0
	for {
		idx := strings.Index(name[offset:], markerPrefix)
		if idx < 0 {
			return match{}, false
		}
		start := offset + idx
		if m, ok := matchAt(name, start, allowWildcard); ok {
			return m, true
		}
		offset = start + 1
	}
}

// matchAt tries to read a complete marker beginning at start, which must
// point at markerPrefix.
func matchAt(name string, start int, allowWildcard bool) (match, bool) {
	m := match{start: start}
	pos := start + len(markerPrefix)

	m.curStart = pos
	if allowWildcard && strings.HasPrefix(name[pos:], WildcardGlyph) {
		pos += len(WildcardGlyph)
		m.wildcard = true
	} else {
		pos = skipDigits(name, pos)
		if pos == m.curStart {
			return match{}, false
		}
	}
	m.curEnd = pos

	if !strings.HasPrefix(name[pos:], markerOf) {
		return match{}, false
	}
	pos += len(markerOf)

	m.totStart = pos
	pos = skipDigits(name, pos)
	if pos == m.totStart {
		return match{}, false
	}
	m.totEnd = pos

	if !strings.HasPrefix(name[pos:], markerSuffix) {
		return match{}, false
	}
	m.end = pos + len(markerSuffix)
	return m, true
}

func skipDigits(s string, pos int) int {
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	return pos
}

// canonical strips leading zeros from a run of decimal digits.
func canonical(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// zeroPad left-pads digits with zeros up to width.
func zeroPad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// Locate returns the byte span of the first marker in name, wildcard
// markers included.
func Locate(name string) (start, end int, ok bool) {
	m, ok := find(name, true)
	if !ok {
		return 0, 0, false
	}
	return m.start, m.end, true
}
