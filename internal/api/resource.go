package api

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is a typed gateway to one remote collection endpoint.
// The zero create path equals the base path; users deviate
// (POST /api/users/create), so it is overridable.
type Resource[T any] struct {
	c          *Client
	basePath   string
	createPath string
}

func NewResource[T any](c *Client, basePath string) *Resource[T] {
	return &Resource[T]{c: c, basePath: basePath, createPath: basePath}
}

// WithCreatePath overrides the endpoint used for Create.
func (r *Resource[T]) WithCreatePath(path string) *Resource[T] {
	r.createPath = path
	return r
}

// List fetches the full remote collection, in server order.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.basePath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create sends the payload; the server assigns the id and returns the
// created entity.
func (r *Resource[T]) Create(ctx context.Context, payload T) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.createPath, payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update replaces the entity with the given id and returns the stored
// result. Fails with a not-found rejection when the remote collection
// lacks the id.
func (r *Resource[T]) Update(ctx context.Context, id string, payload T) (T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%s", r.basePath, id), payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Remove deletes the entity with the given id.
func (r *Resource[T]) Remove(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%s", r.basePath, id), nil, nil)
}
