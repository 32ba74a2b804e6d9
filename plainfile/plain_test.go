package plainfile

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := "  first line  \nsecond\n\n\tthird\t\n"
	lines, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []string{"first line", "second", "", "third"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("Parse() = %v, want %v", lines, want)
	}
}

func TestParseEmpty(t *testing.T) {
	lines, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("Parse(empty) = %v, want no lines", lines)
	}
}
