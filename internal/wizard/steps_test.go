// File path: internal/wizard/steps_test.go
package wizard

import (
	"reflect"
	"testing"

	"github.com/lexigen/lexigen/internal/docgen"
)

func TestStepsShape(t *testing.T) {
	for _, docType := range docgen.DocTypes() {
		steps := Steps(docType)
		if len(steps) < 3 {
			t.Fatalf("%s: only %d steps", docType, len(steps))
		}
		if steps[0].ID != "business" {
			t.Errorf("%s: first step = %q, want business", docType, steps[0].ID)
		}
		last := steps[len(steps)-1]
		if last.ID != "review" {
			t.Errorf("%s: last step = %q, want review", docType, last.ID)
		}
		if len(last.Fields) != 0 {
			t.Errorf("%s: review step must have no fields, got %v", docType, last.Fields)
		}
		for _, step := range steps[:len(steps)-1] {
			for _, field := range step.Fields {
				if !docgen.KnownField(field) {
					t.Errorf("%s/%s: unknown config field %q", docType, step.ID, field)
				}
			}
		}
	}
	if Steps(docgen.DocType("invoice")) != nil {
		t.Errorf("unknown type must return nil")
	}
}

func TestStepsReturnsIsolatedCopies(t *testing.T) {
	steps := Steps(docgen.DocCookie)
	steps[0].ID = "hijacked"
	steps[0].Fields[0] = "bogus_field"

	fresh := Steps(docgen.DocCookie)
	if fresh[0].ID != "business" {
		t.Fatalf("shared table mutated: first step id = %q", fresh[0].ID)
	}
	if fresh[0].Fields[0] == "bogus_field" {
		t.Fatalf("shared table field list mutated")
	}

	p := NewProgress(docgen.DocCookie)
	snap := p.Snapshot()
	snap.Steps[1].Fields[0] = "bogus_field"
	if p.Snapshot().Steps[1].Fields[0] == "bogus_field" {
		t.Fatalf("snapshot shares step storage with progress")
	}
	view := p.Steps()
	view[0].ID = "hijacked"
	if p.CurrentStep().ID != "business" {
		t.Fatalf("steps view shares storage with progress")
	}
}

func TestCookieStepList(t *testing.T) {
	var ids []string
	for _, step := range Steps(docgen.DocCookie) {
		ids = append(ids, step.ID)
	}
	want := []string{"business", "types", "analytics", "consent", "review"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("cookie steps = %v, want %v", ids, want)
	}
}
