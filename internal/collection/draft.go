package collection

import "context"

// Draft is an outstanding edit for one screen: either "create new"
// (no target id) or "edit existing". A screen holds at most one Draft at a
// time and discards it on submit success, submit failure, or cancel.
type Draft[T Resource] struct {
	target  string
	Payload T
}

// NewCreateDraft starts a draft for a new entity.
func NewCreateDraft[T Resource](payload T) *Draft[T] {
	return &Draft[T]{Payload: payload}
}

// NewEditDraft starts a draft editing an existing entity.
func NewEditDraft[T Resource](id string, payload T) *Draft[T] {
	return &Draft[T]{target: id, Payload: payload}
}

// IsNew reports whether the draft creates a new entity.
func (d *Draft[T]) IsNew() bool { return d.target == "" }

// Target returns the id being edited, or "" for a create draft.
func (d *Draft[T]) Target() string { return d.target }

// Submit pushes the draft through the store: create for new drafts, update
// otherwise. The caller discards the draft afterwards regardless of outcome.
func (d *Draft[T]) Submit(ctx context.Context, s *Store[T]) (T, error) {
	if d.IsNew() {
		return s.Create(ctx, d.Payload)
	}
	return s.Update(ctx, d.target, d.Payload)
}
