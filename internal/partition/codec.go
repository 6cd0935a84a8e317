package partition

import (
	"fmt"
	"strconv"
)

// IsPartitioned reports whether name contains a partition marker.
func IsPartitioned(name string) bool {
	_, ok := find(name, false)
	return ok
}

// Extract parses the first partition marker in name.
// Leading zeros in the current index are accepted. The second result is
// false when name has no marker or a number in it does not fit an int.
// Extract does not check that Current lies within Total; see Validate.
func Extract(name string) (Info, bool) {
	m, ok := find(name, false)
	if !ok {
		return Info{}, false
	}
	current, err := strconv.Atoi(m.current(name))
	if err != nil {
		return Info{}, false
	}
	total, err := strconv.Atoi(m.total(name))
	if err != nil {
		return Info{}, false
	}
	return Info{Current: current, Total: total}, true
}

// Rewrite replaces the current index of the first marker in name with
// index, padded to the digit count of the marker's total. Everything outside
// the marker is left untouched.
//
// The padding width comes from the total found in name on every call, so a
// marker whose current index was padded inconsistently is normalized:
//
//	Rewrite("render_part03of100_.prt", 7) // "render_part007of100_.prt"
func Rewrite(name string, index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("%w: negative partition index %d", ErrInvalidFormat, index)
	}
	m, ok := find(name, false)
	if !ok {
		return "", fmt.Errorf("%w: no marker in %q", ErrInvalidFormat, name)
	}
	total := canonical(m.total(name))
	marker := formatMarker(zeroPad(strconv.Itoa(index), len(total)), total)
	return name[:m.start] + marker + name[m.end:], nil
}

// Wildcard replaces the current index of the first marker in name with "*",
// producing a glob pattern that matches every partition of the sequence,
// e.g. "render_part*of120_.prt". The total is kept exactly as written.
//
// A name that already holds a wildcard marker is returned unchanged.
func Wildcard(name string) (string, error) {
	m, ok := find(name, true)
	if !ok {
		return "", fmt.Errorf("%w: no marker in %q", ErrInvalidFormat, name)
	}
	if m.wildcard {
		return name, nil
	}
	return name[:m.curStart] + WildcardGlyph + name[m.curEnd:], nil
}
