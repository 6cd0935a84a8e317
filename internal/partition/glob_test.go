package partition

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestGlobPattern(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want string
	}{
		{"render_part003of120_.prt", "render_part*of120_.prt"},
		{"render_part*of120_.prt", "render_part*of120_.prt"},
		{"shot[1]_part1of2_?.prt", "shot[[]1]_part*of2_[?].prt"},
		{"a*b_part1of2_.prt", "a[*]b_part*of2_.prt"},
	}
	for _, tt := range tests {
		got, err := GlobPattern(tt.name)
		if err != nil {
			t.Errorf("GlobPattern(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GlobPattern(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if _, err := GlobPattern("render.prt"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("GlobPattern on unmarked name: err = %v, want ErrInvalidFormat", err)
	}
}

func TestGlobPattern_MatchesOnlySequence(t *testing.T) {
	t.Parallel()
	pattern, err := GlobPattern("shot[1]_part01of12_0001.prt")
	if err != nil {
		t.Fatalf("GlobPattern: %v", err)
	}
	tests := []struct {
		name string
		want bool
	}{
		{"shot[1]_part05of12_0001.prt", true},
		{"shot[1]_part5of12_0001.prt", true},
		{"shot1_part05of12_0001.prt", false},
		{"shot[1]_part05of11_0001.prt", false},
		{"shot[1]_part05of12_0002.prt", false},
	}
	for _, tt := range tests {
		got, err := filepath.Match(pattern, tt.name)
		if err != nil {
			t.Fatalf("Match(%q): %v", pattern, err)
		}
		if got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", pattern, tt.name, got, tt.want)
		}
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()
	name := "render_part003of120_0042.prt"
	start, end, ok := Locate(name)
	if !ok || name[start:end] != "_part003of120_" {
		t.Errorf("Locate(%q) = %d, %d, %v", name, start, end, ok)
	}
	start, end, ok = Locate("render_part*of120_.prt")
	if !ok || start != 6 || end != 18 {
		t.Errorf("Locate wildcard = %d, %d, %v", start, end, ok)
	}
	if _, _, ok := Locate("render.prt"); ok {
		t.Error("Locate on unmarked name should fail")
	}
}
