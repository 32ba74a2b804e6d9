package record

import (
	"reflect"
	"testing"
)

func TestKeyConstructors(t *testing.T) {
	if got := SegKey(1, 2); got != "docid-1_segid-2" {
		t.Fatalf("SegKey(1, 2) = %q", got)
	}

	d := NewDocKey("5")
	if got := d.Title(); got != "docid-5_title" {
		t.Fatalf("Title() = %q", got)
	}
	if got := d.Desc(); got != "docid-5_desc" {
		t.Fatalf("Desc() = %q", got)
	}
	if got := d.Seg("12"); got != "docid-5_segid-12" {
		t.Fatalf("Seg(12) = %q", got)
	}
}

func TestRecordOrderAndOverwrite(t *testing.T) {
	r := NewRecord()
	r.Set("b", "one")
	r.Set("a", "two")
	r.Set("b", "three") // overwrite keeps position

	if got := r.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := r.Keys(); !reflect.DeepEqual(got, []Key{"b", "a"}) {
		t.Fatalf("Keys() = %v, want [b a]", got)
	}
	if text, ok := r.Get("b"); !ok || text != "three" {
		t.Fatalf("Get(b) = %q, %v; want three, true", text, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatal("Get(missing) should report absent")
	}
}

func TestIntID(t *testing.T) {
	if got := IntID(42); got != "42" {
		t.Fatalf("IntID(42) = %q", got)
	}
}
