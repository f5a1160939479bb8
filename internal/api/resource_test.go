package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillshare/skilladmin/internal/models"
	"github.com/skillshare/skilladmin/internal/shared"
)

func TestResource_List(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/skills", r.URL.Path)
		w.Write([]byte(`[{"id":"s1","name":"Cooking"},{"id":"s2","name":"Chess"}]`))
	}), "")

	skills := NewResource[models.Skill](c, "/api/skills")
	got, err := skills.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "Chess", got[1].Name)
}

func TestResource_CreateUsesCreatePath(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/create", r.URL.Path)

		var in models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "u9"
		json.NewEncoder(w).Encode(in)
	}), "")

	users := NewResource[models.User](c, "/api/users").WithCreatePath("/api/users/create")
	created, err := users.Create(context.Background(), models.User{Name: "Alice", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "u9", created.ID)
	assert.Equal(t, "Alice", created.Name)
}

func TestResource_Update(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/skills/s1", r.URL.Path)
		w.Write([]byte(`{"id":"s1","name":"Baking"}`))
	}), "")

	skills := NewResource[models.Skill](c, "/api/skills")
	updated, err := skills.Update(context.Background(), "s1", models.Skill{Name: "Baking"})
	require.NoError(t, err)
	assert.Equal(t, "Baking", updated.Name)
}

func TestResource_UpdateMissingIDIsNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"skill not found"}`))
	}), "")

	skills := NewResource[models.Skill](c, "/api/skills")
	_, err := skills.Update(context.Background(), "ghost", models.Skill{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Equal(t, "skill not found", err.Error())
}

func TestResource_Remove(t *testing.T) {
	var path, method string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		w.WriteHeader(http.StatusOK)
	}), "")

	users := NewResource[models.User](c, "/api/users")
	require.NoError(t, users.Remove(context.Background(), "u1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/users/u1", path)
}

func TestResource_ListNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, nil, testLogger())
	_, err := NewResource[models.Skill](c, "/api/skills").List(context.Background())
	assert.ErrorIs(t, err, shared.ErrUnavailable)
}
