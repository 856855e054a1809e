package core

import (
	"testing"
	"time"
)

func TestDebouncerSettlesOnLastSize(t *testing.T) {
	ms := time.Millisecond
	d := NewDebouncer(150*ms, Size{W: 800, H: 600})
	d.Observe(Size{W: 810, H: 600}, 0)
	d.Observe(Size{W: 900, H: 640}, 50*ms)
	d.Observe(Size{W: 1024, H: 768}, 100*ms)

	if _, ok := d.Poll(200 * ms); ok {
		t.Fatal("settled before the quiet period after the last event")
	}
	s, ok := d.Poll(250 * ms)
	if !ok || s != (Size{W: 1024, H: 768}) {
		t.Fatalf("Poll = %v, %v; want 1024x768, true", s, ok)
	}
	if _, ok := d.Poll(400 * ms); ok {
		t.Fatal("settled size reported twice")
	}
	if d.Current() != (Size{W: 1024, H: 768}) {
		t.Fatalf("current = %v", d.Current())
	}
}

func TestDebouncerIgnoresUnchangedSize(t *testing.T) {
	d := NewDebouncer(10*time.Millisecond, Size{W: 100, H: 100})
	d.Observe(Size{W: 100, H: 100}, 0)
	if _, ok := d.Poll(time.Second); ok {
		t.Fatal("unchanged size reported as a resize")
	}

	d.Observe(Size{W: 120, H: 100}, 0)
	d.Observe(Size{W: 100, H: 100}, time.Millisecond)
	if _, ok := d.Poll(time.Second); ok {
		t.Fatal("burst returning to the settled size reported as a resize")
	}
}
