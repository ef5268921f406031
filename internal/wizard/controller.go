// File path: internal/wizard/controller.go
package wizard

import (
	"context"
	"errors"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/session"
)

// SessionService is the slice of the session coordinator the controller
// needs.
type SessionService interface {
	CreateSession(ctx context.Context) (session.Record, error)
	GetSession(ctx context.Context, id string) (session.Record, error)
	PatchConfig(ctx context.Context, id string, partial map[string]interface{}) (session.Record, []string, error)
	ResetConfig(ctx context.Context, id string) (session.Record, error)
}

// DocumentService renders and stores documents from a configuration.
type DocumentService interface {
	Generate(cfg docgen.Config, docTypes []docgen.DocType, format docgen.Format) ([]docgen.Document, error)
}

// ErrorKind classifies the failure surfaced to the user. Navigation
// rejections and missing sessions are handled silently and never appear
// here.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	// ErrSaveFailed is non-blocking: local edits are kept and the user can
	// keep editing and retry.
	ErrSaveFailed
	// ErrGenerationFailed is blocking: the wizard stays on the review step
	// until the user retries or navigates away.
	ErrGenerationFailed
)

// ErrorState is the user-visible failure carried as state rather than
// propagated as an error value.
type ErrorState struct {
	Kind    ErrorKind
	Message string
}

// Controller owns one editing session: the working configuration record,
// its per-field dirty set, the navigation state, and the last user-visible
// error. The local record is optimistically ahead of the stored one until
// the next successful save; a failed save never rolls local edits back.
type Controller struct {
	sessions SessionService
	docs     DocumentService

	sessionID string
	cfg       docgen.Config
	dirty     map[string]interface{}
	progress  *Progress
	lastErr   ErrorState
}

// NewController loads the identified session, silently creating a fresh one
// when the id is empty or no longer known. Only boundary failures other
// than a missing session are returned.
func NewController(ctx context.Context, sessions SessionService, docs DocumentService, sessionID string) (*Controller, error) {
	c := &Controller{
		sessions: sessions,
		docs:     docs,
		dirty:    make(map[string]interface{}),
		progress: &Progress{},
	}
	c.progress.Reset()

	var rec session.Record
	var err error
	if sessionID != "" {
		rec, err = sessions.GetSession(ctx, sessionID)
		if errors.Is(err, session.ErrNotFound) {
			common.Logger().Info("wizard: session expired, creating fresh", "session_id", sessionID)
			rec, err = sessions.CreateSession(ctx)
		}
	} else {
		rec, err = sessions.CreateSession(ctx)
	}
	if err != nil {
		return nil, err
	}
	c.sessionID = rec.ID
	c.cfg = rec.Config.Clone()
	return c, nil
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

// Config returns the working record, local edits included.
func (c *Controller) Config() docgen.Config {
	return c.cfg.Clone()
}

// Dirty returns the field names edited since the last successful save.
func (c *Controller) Dirty() []string {
	names := make([]string, 0, len(c.dirty))
	for name := range c.dirty {
		names = append(names, name)
	}
	return names
}

func (c *Controller) LastError() ErrorState {
	return c.lastErr
}

func (c *Controller) ClearError() {
	c.lastErr = ErrorState{}
}

func (c *Controller) Progress() *Progress {
	return c.progress
}

func (c *Controller) Snapshot() Snapshot {
	return c.progress.Snapshot()
}

// SelectDocType starts a fresh navigation pass for the given type. Existing
// record values are kept; only navigation resets.
func (c *Controller) SelectDocType(docType docgen.DocType) {
	c.progress.SelectDocType(docType)
	c.lastErr = ErrorState{}
}

// OnFieldChange applies one field edit locally and marks it dirty. Unknown
// fields are dropped.
func (c *Controller) OnFieldChange(name string, value interface{}) {
	if ignored := c.cfg.Merge(map[string]interface{}{name: value}); len(ignored) > 0 {
		common.Logger().Warn("wizard: dropped unknown field", "field", name)
		return
	}
	c.dirty[name] = value
}

// Save pushes the dirty fields to the session coordinator. On success the
// dirty set is cleared and the current step marked complete. On failure the
// dirty set is kept, local edits stand, and a non-blocking SaveFailed state
// is recorded.
func (c *Controller) Save(ctx context.Context) {
	if len(c.dirty) == 0 {
		c.progress.MarkComplete(c.progress.Current())
		return
	}
	_, _, err := c.sessions.PatchConfig(ctx, c.sessionID, c.dirty)
	if errors.Is(err, session.ErrNotFound) {
		rec, createErr := c.sessions.CreateSession(ctx)
		if createErr == nil {
			c.sessionID = rec.ID
			_, _, err = c.sessions.PatchConfig(ctx, c.sessionID, c.dirty)
		} else {
			err = createErr
		}
	}
	if err != nil {
		common.Logger().Warn("wizard: save failed", "session_id", c.sessionID, "error", err)
		c.lastErr = ErrorState{Kind: ErrSaveFailed, Message: "saving your answers failed; your edits are kept and will be retried on the next save"}
		return
	}
	c.dirty = make(map[string]interface{})
	if c.lastErr.Kind == ErrSaveFailed {
		c.lastErr = ErrorState{}
	}
	c.progress.MarkComplete(c.progress.Current())
}

// Next saves the current step and moves forward. A failed save does not
// block navigation.
func (c *Controller) Next(ctx context.Context) {
	c.Save(ctx)
	c.progress.Advance()
}

func (c *Controller) Prev() {
	c.progress.Retreat()
}

// JumpTo delegates to the state machine; illegal targets are a silent
// no-op.
func (c *Controller) JumpTo(index int) bool {
	return c.progress.JumpTo(index)
}

// Generate renders the requested documents from the working record. It is
// only available on the review step; elsewhere it reports false without
// side effects. On failure the wizard stays on review with a blocking
// GenerationFailed state.
func (c *Controller) Generate(ctx context.Context, docTypes []docgen.DocType, format docgen.Format) ([]docgen.Document, bool) {
	if !c.progress.OnReview() {
		return nil, false
	}
	c.Save(ctx)
	docs, err := c.docs.Generate(c.cfg, docTypes, format)
	if err != nil {
		common.Logger().Error("wizard: generation failed", "session_id", c.sessionID, "error", err)
		c.lastErr = ErrorState{Kind: ErrGenerationFailed, Message: "document generation failed; review your answers and try again"}
		return nil, true
	}
	c.lastErr = ErrorState{}
	return docs, true
}

// Reset restores the stored record to defaults and clears all local state.
func (c *Controller) Reset(ctx context.Context) {
	rec, err := c.sessions.ResetConfig(ctx, c.sessionID)
	if errors.Is(err, session.ErrNotFound) {
		rec, err = c.sessions.CreateSession(ctx)
		if err == nil {
			c.sessionID = rec.ID
		}
	}
	if err != nil {
		common.Logger().Warn("wizard: reset failed", "session_id", c.sessionID, "error", err)
		c.lastErr = ErrorState{Kind: ErrSaveFailed, Message: "resetting your session failed"}
		return
	}
	c.cfg = rec.Config.Clone()
	c.dirty = make(map[string]interface{})
	c.progress.Reset()
	c.lastErr = ErrorState{}
}
