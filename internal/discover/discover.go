// Package discover finds the partition files of a sequence on disk.
package discover

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/deeklead/kpart/internal/partition"
)

// Options controls how a scan interprets partition indices.
type Options struct {
	// Base is the index of the first partition. Defaults to OneBased.
	Base partition.Base
}

// DefaultOptions returns the options Krakatoa output is written with.
func DefaultOptions() Options {
	return Options{Base: partition.OneBased}
}

// Entry is a partition file found on disk.
type Entry struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

// Report is the result of scanning for one sequence.
type Report struct {
	Template string         `json:"template"`
	Pattern  string         `json:"pattern"`
	Total    int            `json:"total"`
	Base     partition.Base `json:"base"`

	// Present lists the expected partition files that exist, by index.
	Present []Entry `json:"present"`

	// Missing lists the expected indices with no file.
	Missing []int `json:"missing"`

	// Stray lists files matching the pattern that do not belong to the
	// sequence: wrong total, index out of range, or inconsistent padding.
	Stray []string `json:"stray"`
}

// Complete reports whether every partition of the sequence exists.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0
}

// Scan globs for every partition of the sequence template belongs to and
// classifies what it finds. template must carry a concrete marker.
func Scan(template string, opts Options) (*Report, error) {
	if !opts.Base.IsValid() {
		return nil, fmt.Errorf("invalid index base %d", opts.Base)
	}

	info, ok := partition.Extract(template)
	if !ok {
		return nil, fmt.Errorf("%w: no marker in %q", partition.ErrInvalidFormat, template)
	}
	if info.Total < 1 {
		return nil, fmt.Errorf("%w: total %d is less than 1", partition.ErrInvalidFormat, info.Total)
	}

	pattern, err := partition.GlobPattern(template)
	if err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", pattern, err)
	}

	report := &Report{
		Template: template,
		Pattern:  pattern,
		Total:    info.Total,
		Base:     opts.Base,
		Present:  []Entry{},
		Missing:  []int{},
		Stray:    []string{},
	}

	found := make(map[int]string, len(matches))
	for _, path := range matches {
		idx, ok := belongs(template, path, info.Total, opts.Base)
		if !ok {
			report.Stray = append(report.Stray, path)
			continue
		}
		found[idx] = path
	}

	for idx := opts.Base.First(); idx <= opts.Base.Last(info.Total); idx++ {
		if path, ok := found[idx]; ok {
			report.Present = append(report.Present, Entry{Index: idx, Path: path})
		} else {
			report.Missing = append(report.Missing, idx)
		}
	}

	sort.Strings(report.Stray)
	return report, nil
}

// belongs returns the index of path if it is exactly the name the template
// produces for that index.
func belongs(template, path string, total int, base partition.Base) (int, bool) {
	got, ok := partition.Extract(path)
	if !ok || got.Total != total || !base.Contains(got.Current, total) {
		return 0, false
	}
	want, err := partition.Rewrite(template, got.Current)
	if err != nil || filepath.Clean(want) != filepath.Clean(path) {
		return 0, false
	}
	return got.Current, true
}
