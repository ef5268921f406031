// File path: internal/wizard/progress_test.go
package wizard

import (
	"reflect"
	"testing"

	"github.com/lexigen/lexigen/internal/docgen"
)

func TestAdvanceClampsAtLast(t *testing.T) {
	p := NewProgress(docgen.DocCookie)
	n := len(p.Steps())
	for i := 0; i < n+3; i++ {
		p.Advance()
	}
	if p.Current() != n-1 {
		t.Fatalf("current = %d, want %d", p.Current(), n-1)
	}
	// The final step is never marked complete by advancing into it.
	if got := p.Completed(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("completed = %v", got)
	}
}

func TestRetreatNeverUncompletes(t *testing.T) {
	p := NewProgress(docgen.DocCookie)
	p.Advance()
	p.Advance()
	before := p.Completed()
	p.Retreat()
	p.Retreat()
	p.Retreat() // clamped at 0
	if p.Current() != 0 {
		t.Fatalf("current = %d, want 0", p.Current())
	}
	if !reflect.DeepEqual(p.Completed(), before) {
		t.Fatalf("retreat changed completed set: %v -> %v", before, p.Completed())
	}
	p.Advance()
	if p.Current() != 1 {
		t.Fatalf("retreat then advance drifted: %d", p.Current())
	}
}

func TestJumpToBoundary(t *testing.T) {
	// The full walk from the navigation design: five cookie steps, advance
	// four times, then exercise the exact current/current+1 boundary.
	p := NewProgress(docgen.DocCookie)
	for i := 0; i < 4; i++ {
		p.Advance()
	}
	if p.Current() != 4 {
		t.Fatalf("current = %d, want 4", p.Current())
	}
	if got := p.Completed(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("completed = %v", got)
	}

	if !p.JumpTo(1) || p.Current() != 1 {
		t.Fatalf("jump to completed step 1 failed, current = %d", p.Current())
	}
	if !p.JumpTo(3) || p.Current() != 3 {
		t.Fatalf("jump to completed step 3 failed, current = %d", p.Current())
	}
	// From 3, step 4 is current+1 even though it was never completed.
	if !p.JumpTo(4) || p.Current() != 4 {
		t.Fatalf("jump to current+1 failed, current = %d", p.Current())
	}
}

func TestJumpToRejectsSkips(t *testing.T) {
	p := NewProgress(docgen.DocPrivacy)
	if p.JumpTo(2) {
		t.Fatalf("skipping two steps ahead must be rejected")
	}
	if p.Current() != 0 {
		t.Fatalf("rejected jump changed state")
	}
	if p.JumpTo(-1) || p.JumpTo(len(p.Steps())) {
		t.Fatalf("out-of-bounds jump must be rejected")
	}
	if !p.JumpTo(0) {
		t.Fatalf("jump to current must succeed")
	}
	if !p.JumpTo(1) {
		t.Fatalf("jump to current+1 must succeed")
	}
}

func TestSelectDocTypeResets(t *testing.T) {
	p := NewProgress(docgen.DocPrivacy)
	p.Advance()
	p.Advance()
	p.SelectDocType(docgen.DocEULA)
	if p.Current() != 0 || len(p.Completed()) != 0 {
		t.Fatalf("select did not reset navigation: current=%d completed=%v", p.Current(), p.Completed())
	}
	if p.DocType() != docgen.DocEULA {
		t.Fatalf("doc type = %q", p.DocType())
	}

	// Re-selecting the active type resets the same way.
	p.Advance()
	p.SelectDocType(docgen.DocEULA)
	if p.Current() != 0 || len(p.Completed()) != 0 {
		t.Fatalf("re-select did not reset")
	}
}

func TestSnapshot(t *testing.T) {
	p := NewProgress(docgen.DocTerms)
	p.Advance()
	snap := p.Snapshot()
	if snap.DocType != docgen.DocTerms || snap.Current != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if len(snap.Steps) != len(Steps(docgen.DocTerms)) {
		t.Fatalf("snapshot step count = %d", len(snap.Steps))
	}
	if !reflect.DeepEqual(snap.Completed, []int{0}) {
		t.Fatalf("snapshot completed = %v", snap.Completed)
	}
}
