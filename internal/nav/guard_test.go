package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ProtectedPathsUnauthenticated(t *testing.T) {
	for _, path := range []string{PathUsers, PathSkills, PathBookings, PathAnalytics} {
		d := Resolve(path, false)
		assert.True(t, d.Redirect, path)
		assert.Equal(t, PathLogin, d.Path, path)
	}
}

func TestResolve_ProtectedPathsAuthenticated(t *testing.T) {
	for _, path := range []string{PathUsers, PathSkills, PathBookings, PathAnalytics} {
		d := Resolve(path, true)
		assert.False(t, d.Redirect, path)
		assert.Equal(t, path, d.Path, path)
	}
}

func TestResolve_AuthPagesAlwaysRender(t *testing.T) {
	for _, path := range []string{PathLogin, PathSignup} {
		for _, authed := range []bool{true, false} {
			d := Resolve(path, authed)
			assert.False(t, d.Redirect)
			assert.Equal(t, path, d.Path)
		}
	}
}

func TestResolve_Root(t *testing.T) {
	d := Resolve(PathRoot, true)
	assert.Equal(t, Decision{Path: PathUsers, Redirect: true}, d)

	d = Resolve(PathRoot, false)
	assert.Equal(t, Decision{Path: PathLogin, Redirect: true}, d)
}

func TestResolve_UnknownPathIsTotal(t *testing.T) {
	d := Resolve("/no-such-screen", false)
	assert.Equal(t, Decision{Path: PathLogin, Redirect: true}, d)

	d = Resolve("/no-such-screen", true)
	assert.Equal(t, Decision{Path: PathRoot, Redirect: true}, d)
}
