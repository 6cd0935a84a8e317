package partition

import (
	"fmt"
	"strings"
)

// Base is the index of the first partition in a sequence.
type Base int

const (
	// ZeroBased sequences number partitions 0..total-1.
	ZeroBased Base = 0
	// OneBased sequences number partitions 1..total. Krakatoa writes these.
	OneBased Base = 1
)

// IsValid reports whether b is a supported index convention.
func (b Base) IsValid() bool {
	return b == ZeroBased || b == OneBased
}

// First returns the first index of a sequence of total partitions.
func (b Base) First() int { return int(b) }

// Last returns the last index of a sequence of total partitions.
func (b Base) Last(total int) int { return total - 1 + int(b) }

// Contains reports whether index addresses a partition of a sequence of
// total partitions.
func (b Base) Contains(index, total int) bool {
	return index >= b.First() && index <= b.Last(total)
}

// Validate checks info against the sequence it claims to belong to. It is
// the opt-in strict mode: the codec itself accepts any index.
func Validate(info Info, base Base) error {
	if info.Total < 1 {
		return fmt.Errorf("%w: total %d is less than 1", ErrOutOfRange, info.Total)
	}
	if !base.Contains(info.Current, info.Total) {
		return fmt.Errorf("%w: index %d not in %d..%d", ErrOutOfRange,
			info.Current, base.First(), base.Last(info.Total))
	}
	return nil
}

// ExtractStrict is Extract followed by Validate. A missing marker is
// reported as ErrInvalidFormat.
func ExtractStrict(name string, base Base) (Info, error) {
	info, ok := Extract(name)
	if !ok {
		return Info{}, fmt.Errorf("%w: no marker in %q", ErrInvalidFormat, name)
	}
	if err := Validate(info, base); err != nil {
		return Info{}, err
	}
	return info, nil
}

// Names returns the name of every partition in the sequence template
// belongs to, in index order.
func Names(template string, base Base) ([]string, error) {
	info, ok := Extract(template)
	if !ok {
		return nil, fmt.Errorf("%w: no marker in %q", ErrInvalidFormat, template)
	}
	if info.Total < 1 {
		return nil, fmt.Errorf("%w: total %d is less than 1", ErrInvalidFormat, info.Total)
	}

	names := make([]string, 0, info.Total)
	for idx := base.First(); idx <= base.Last(info.Total); idx++ {
		name, err := Rewrite(template, idx)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Insert adds a marker to a name that has none. The marker goes in front of
// a trailing frame number, otherwise in front of the extension:
//
//	particles_0042.prt -> particles_part01of10_0042.prt
//	particles.prt      -> particles_part01of10_.prt
//
// An underscore right before the insertion point becomes the marker's
// leading underscore. Directory components are never changed.
func Insert(name string, current, total int) (string, error) {
	if total < 1 {
		return "", fmt.Errorf("%w: total %d is less than 1", ErrInvalidFormat, total)
	}
	if current < 0 {
		return "", fmt.Errorf("%w: negative partition index %d", ErrInvalidFormat, current)
	}
	if IsPartitioned(name) {
		return "", fmt.Errorf("%w: %q", ErrAlreadyPartitioned, name)
	}

	dir, base := "", name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		dir, base = name[:i+1], name[i+1:]
	}

	stem, ext := base, ""
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem, ext = base[:i], base[i:]
	}

	frameStart := len(stem)
	for frameStart > 0 && stem[frameStart-1] >= '0' && stem[frameStart-1] <= '9' {
		frameStart--
	}
	prefix, frame := stem[:frameStart], stem[frameStart:]
	prefix = strings.TrimSuffix(prefix, markerSuffix)

	return dir + prefix + FormatMarker(current, total) + frame + ext, nil
}
