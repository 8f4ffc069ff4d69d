package selection

import "testing"

func TestDebouncerLastWriteWins(t *testing.T) {
	var d Debouncer

	first := d.Arm("gr")
	second := d.Arm("gri")

	if q, ok := d.Fire(first); ok {
		t.Fatalf("stale timer applied query %q", q)
	}
	q, ok := d.Fire(second)
	if !ok || q != "gri" {
		t.Fatalf("expected gri, got %q ok=%v", q, ok)
	}
}

func TestDebouncerFiresOnce(t *testing.T) {
	var d Debouncer

	gen := d.Arm("grin")
	if _, ok := d.Fire(gen); !ok {
		t.Fatal("expected first fire to resolve")
	}
	if q, ok := d.Fire(gen); ok {
		t.Fatalf("second fire resolved %q", q)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var d Debouncer

	gen := d.Arm("grin")
	d.Cancel()
	if q, ok := d.Fire(gen); ok {
		t.Fatalf("cancelled timer resolved %q", q)
	}

	// Arming again after cancel works normally.
	gen = d.Arm("smile")
	if q, ok := d.Fire(gen); !ok || q != "smile" {
		t.Fatalf("expected smile, got %q ok=%v", q, ok)
	}
}
