package draftsmith

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTitlesIsLeftInverseOfJoin(t *testing.T) {
	cases := [][]string{
		{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"},
		{"One title"},
		{"Spacing kept ", " on purpose"},
	}
	for _, want := range cases {
		got := ParseTitles(strings.Join(want, titleSeparator))
		if len(got) != len(want) {
			t.Fatalf("parse(join(%q)) length = %d, want %d", want, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("parse(join)[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	}
}

func TestParseTitlesTenTitleResponse(t *testing.T) {
	got := ParseTitles("A, B, C, D, E, F, G, H, I, J")
	if len(got) != 10 {
		t.Fatalf("got %d titles, want 10", len(got))
	}
	if got[0] != "A" || got[9] != "J" {
		t.Errorf("unexpected boundary titles: %q ... %q", got[0], got[9])
	}
}

func TestValidateTitleCount(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		wantOK bool
	}{
		{"exactly ten", make([]string, 10), true},
		{"nine", make([]string, 9), false},
		{"eleven", make([]string, 11), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		err := ValidateTitleCount(tt.titles)
		if tt.wantOK && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.wantOK {
			if err == nil {
				t.Errorf("%s: expected error", tt.name)
			} else if !errors.Is(err, ErrMalformedOutput) {
				t.Errorf("%s: error %v does not wrap ErrMalformedOutput", tt.name, err)
			}
		}
	}
}
