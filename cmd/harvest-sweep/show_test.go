package main

import (
	"bytes"
	"strings"
	"testing"

	"pineapples/pkg/garden"
)

func TestParseClicks(t *testing.T) {
	got, err := parseClicks([]string{"1,2", " 3 , 0"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != (garden.Coord{Row: 1, Col: 2}) || got[1] != (garden.Coord{Row: 3, Col: 0}) {
		t.Fatalf("parseClicks = %v", got)
	}
	for _, bad := range []string{"12", "a,1", "1,b"} {
		if _, err := parseClicks([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRenderModel(t *testing.T) {
	m := garden.NewModel(garden.New(3, 3), garden.ModeBudget)
	m = garden.Update(m, garden.Increment{Row: 1, Col: 1})

	var buf bytes.Buffer
	renderModel(&buf, m)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 3 grid rows and a summary, got %q", buf.String())
	}
	if lines[0] != "C5   F5   C5  " {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if lines[1] != "F5   F5 * F5  " {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[3] != "mode=budget pineapples=25 radiators_available=4/5" {
		t.Fatalf("summary = %q", lines[3])
	}
}
