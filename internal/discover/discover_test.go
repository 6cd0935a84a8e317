package discover

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/deeklead/kpart/internal/partition"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestScan_OneBased(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"fx_part1of4_0010.prt",
		"fx_part2of4_0010.prt",
		"fx_part4of4_0010.prt",
		"fx_part5of4_0010.prt",  // out of range
		"fx_part3of5_0010.prt",  // other sequence, not matched by the glob
		"fx_part1of4_0011.prt",  // other frame
		"fx_part01of4_0010.prt", // bad padding
		"unrelated.txt",
	)

	report, err := Scan(filepath.Join(dir, "fx_part1of4_0010.prt"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if report.Total != 4 {
		t.Errorf("Total = %d, want 4", report.Total)
	}
	wantPresent := []Entry{
		{Index: 1, Path: filepath.Join(dir, "fx_part1of4_0010.prt")},
		{Index: 2, Path: filepath.Join(dir, "fx_part2of4_0010.prt")},
		{Index: 4, Path: filepath.Join(dir, "fx_part4of4_0010.prt")},
	}
	if !reflect.DeepEqual(report.Present, wantPresent) {
		t.Errorf("Present = %+v, want %+v", report.Present, wantPresent)
	}
	if !reflect.DeepEqual(report.Missing, []int{3}) {
		t.Errorf("Missing = %v, want [3]", report.Missing)
	}
	wantStray := []string{
		filepath.Join(dir, "fx_part01of4_0010.prt"),
		filepath.Join(dir, "fx_part5of4_0010.prt"),
	}
	if !reflect.DeepEqual(report.Stray, wantStray) {
		t.Errorf("Stray = %v, want %v", report.Stray, wantStray)
	}
	if report.Complete() {
		t.Error("Complete() = true with a missing partition")
	}
}

func TestScan_ZeroBasedComplete(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "fx_part0of2_.prt", "fx_part1of2_.prt")

	report, err := Scan(filepath.Join(dir, "fx_part1of2_.prt"), Options{Base: partition.ZeroBased})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !report.Complete() {
		t.Errorf("Missing = %v, want none", report.Missing)
	}
	if len(report.Present) != 2 || len(report.Stray) != 0 {
		t.Errorf("Present = %v, Stray = %v", report.Present, report.Stray)
	}
}

func TestScan_GlobMetacharactersInName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot[a]_part1of2_.prt", "shota_part2of2_.prt")

	report, err := Scan(filepath.Join(dir, "shot[a]_part1of2_.prt"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(report.Present) != 1 || report.Present[0].Index != 1 {
		t.Errorf("Present = %+v, want only index 1", report.Present)
	}
	if !reflect.DeepEqual(report.Missing, []int{2}) {
		t.Errorf("Missing = %v, want [2]", report.Missing)
	}
}

func TestScan_Errors(t *testing.T) {
	if _, err := Scan("fx_0010.prt", DefaultOptions()); !errors.Is(err, partition.ErrInvalidFormat) {
		t.Errorf("unmarked template: err = %v, want ErrInvalidFormat", err)
	}
	if _, err := Scan("fx_part0of0_.prt", DefaultOptions()); !errors.Is(err, partition.ErrInvalidFormat) {
		t.Errorf("zero total: err = %v, want ErrInvalidFormat", err)
	}
	if _, err := Scan("fx_part1of2_.prt", Options{Base: 7}); err == nil {
		t.Error("invalid base: expected error")
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	report, err := Scan(filepath.Join(dir, "fx_part1of3_.prt"), DefaultOptions())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(report.Missing, []int{1, 2, 3}) {
		t.Errorf("Missing = %v, want [1 2 3]", report.Missing)
	}
}
