// Package nav decides whether a navigation target is reachable for the
// current session. Resolve is pure and total: it reads session state,
// never mutates it, and yields a decision for every input.
package nav

// Navigation surface of the admin client.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathUsers     = "/user-management"
	PathSkills    = "/skill-management"
	PathBookings  = "/booking"
	PathAnalytics = "/analytics"
)

// Decision is the outcome of resolving a navigation target: render Path,
// or redirect to Path instead of the requested target.
type Decision struct {
	Path     string
	Redirect bool
}

func render(path string) Decision   { return Decision{Path: path} }
func redirect(path string) Decision { return Decision{Path: path, Redirect: true} }

// Resolve maps a requested path and the session's authentication status to
// a decision. Auth pages always render, even for authenticated sessions.
// The root forwards to the landing screen. Every protected or unknown path
// requires authentication and otherwise redirects to login.
func Resolve(path string, authenticated bool) Decision {
	switch path {
	case PathLogin, PathSignup:
		return render(path)

	case PathRoot:
		if authenticated {
			return redirect(PathUsers)
		}
		return redirect(PathLogin)

	case PathUsers, PathSkills, PathBookings, PathAnalytics:
		if authenticated {
			return render(path)
		}
		return redirect(PathLogin)

	default:
		if authenticated {
			return redirect(PathRoot)
		}
		return redirect(PathLogin)
	}
}
