// File path: internal/wizard/progress.go
package wizard

import (
	"sort"

	"github.com/lexigen/lexigen/internal/docgen"
)

// Progress is the navigation state machine for one document-type editing
// session. It gates which step is presented: moving backward through
// completed territory is always allowed, skipping forward past ungathered
// steps is not. The zero value has no document type selected and an empty
// step list.
type Progress struct {
	docType   docgen.DocType
	steps     []Step
	current   int
	completed map[int]struct{}
}

// NewProgress returns a progress positioned on the first step of the given
// document type.
func NewProgress(docType docgen.DocType) *Progress {
	p := &Progress{}
	p.SelectDocType(docType)
	return p
}

// SelectDocType swaps in the step list for the given type and resets
// navigation: index 0, empty completed set. Selecting the already-active
// type resets the same way.
func (p *Progress) SelectDocType(docType docgen.DocType) {
	p.docType = docType
	p.steps = Steps(docType)
	p.current = 0
	p.completed = make(map[int]struct{})
}

// Advance marks the current step completed and moves one step forward.
// At the last step it is a no-op.
func (p *Progress) Advance() {
	if p.current >= len(p.steps)-1 {
		return
	}
	p.completed[p.current] = struct{}{}
	p.current++
}

// Retreat moves one step backward without un-completing anything. At the
// first step it is a no-op.
func (p *Progress) Retreat() {
	if p.current > 0 {
		p.current--
	}
}

// JumpTo moves directly to index if the target is legal: in bounds and
// either already completed, the current step, or the step immediately after
// the current one. Illegal targets leave the state unchanged and report
// false.
func (p *Progress) JumpTo(index int) bool {
	if index < 0 || index >= len(p.steps) {
		return false
	}
	_, done := p.completed[index]
	if !done && index != p.current && index != p.current+1 {
		return false
	}
	p.current = index
	return true
}

// MarkComplete records index as completed regardless of position. Used when
// a step's data is saved out of band.
func (p *Progress) MarkComplete(index int) {
	if index < 0 || index >= len(p.steps) {
		return
	}
	p.completed[index] = struct{}{}
}

// Reset returns to the initial state: no document type, no steps.
func (p *Progress) Reset() {
	p.docType = ""
	p.steps = nil
	p.current = 0
	p.completed = make(map[int]struct{})
}

func (p *Progress) DocType() docgen.DocType {
	return p.docType
}

func (p *Progress) Current() int {
	return p.current
}

// CurrentStep returns the active step, or a zero Step when no document
// type is selected.
func (p *Progress) CurrentStep() Step {
	if p.current < 0 || p.current >= len(p.steps) {
		return Step{}
	}
	return p.steps[p.current]
}

// OnReview reports whether the active step is the final review step.
func (p *Progress) OnReview() bool {
	return len(p.steps) > 0 && p.current == len(p.steps)-1
}

// Steps returns a copy of the active step list; mutating it does not
// affect the progress state.
func (p *Progress) Steps() []Step {
	return cloneSteps(p.steps)
}

// Completed returns the completed indices in ascending order.
func (p *Progress) Completed() []int {
	out := make([]int, 0, len(p.completed))
	for idx := range p.completed {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Snapshot is the wire view of the navigation state.
type Snapshot struct {
	DocType   docgen.DocType `json:"doc_type"`
	Steps     []Step         `json:"steps"`
	Current   int            `json:"current_step"`
	Completed []int          `json:"completed_steps"`
}

func (p *Progress) Snapshot() Snapshot {
	return Snapshot{
		DocType:   p.docType,
		Steps:     cloneSteps(p.steps),
		Current:   p.current,
		Completed: p.Completed(),
	}
}
