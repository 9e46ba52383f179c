package catalog

import (
	"reflect"
	"testing"

	"labkart/internal"
)

func TestCandidateSlugs(t *testing.T) {
	row := internal.Row{
		Brand: "Whatman",
		Name:  "Filter Paper Grade 1",
		Pack:  "100 sheets",
		Code:  "1001-125",
	}

	want := []string{
		"whatman-filter-paper-grade-1-100-sheets-1001-125",
		"whatman-filter-paper-grade-1-100-sheets",
		"whatman-filter-paper-grade-1-1001-125",
		"whatman-filter-paper-grade-1",
		"filter-paper-grade-1-100-sheets",
		"filter-paper-grade-1-100-sheets-1001-125",
		"whatman-1001-125",
		"1001-125",
	}
	got := CandidateSlugs(row)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
	if PrimarySlug(row) != want[0] {
		t.Fatalf("canonical %q", PrimarySlug(row))
	}
}

func TestCandidateSlugsEmptyFieldsCollapse(t *testing.T) {
	// With pack and code empty, most combinations collapse to the same
	// string; only the first occurrence survives.
	row := internal.Row{Brand: "Borosil", Name: "Watch Glass"}
	want := []string{"borosil-watch-glass", "watch-glass"}
	if got := CandidateSlugs(row); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestCandidateSlugsCodeOnly(t *testing.T) {
	row := internal.Row{Code: "H0100"}
	if got := CandidateSlugs(row); !reflect.DeepEqual(got, []string{"h0100"}) {
		t.Fatalf("got %v", got)
	}
}

func TestCandidateSlugsAllEmpty(t *testing.T) {
	if got := CandidateSlugs(internal.Row{}); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
