// Package route decides which screen the app shows for a given path and
// session state. The guard itself is pure derived state; it is recomputed on
// every path or auth change.
package route

// Screen paths. These mirror the routes of the original web client so the
// backend-facing docs stay readable.
const (
	PathRoot    = "/"
	PathLogin   = "/login"
	PathSignup  = "/signup"
	PathHome    = "/home"
	PathHistory = "/history"
	PathMap     = "/map"
)

// authenticatedPaths are the screens an authenticated user may stay on.
// Anywhere else they are sent to the landing screen.
var authenticatedPaths = map[string]bool{
	PathHome:    true,
	PathHistory: true,
	PathMap:     true,
}

// Decision is the guard's output for one (path, session) combination.
type Decision struct {
	// Loading is set while the session restore has not completed; render
	// nothing but a loading indicator.
	Loading bool
	// RedirectTo is non-empty when the current path is not allowed and the
	// app should navigate there instead.
	RedirectTo string
	// ShowBackground controls the welcome-screen decoration.
	ShowBackground bool
	// ShowLoginCTA controls the login call-to-action on the welcome screen.
	ShowLoginCTA bool
}

// Evaluate computes the routing decision for the current path and session
// state.
func Evaluate(path string, authenticated, initialized bool) Decision {
	if !initialized {
		return Decision{Loading: true}
	}

	d := Decision{}
	if authenticated && !authenticatedPaths[path] {
		d.RedirectTo = PathHome
	}
	d.ShowBackground = path == PathRoot && !authenticated
	d.ShowLoginCTA = path == PathRoot && !authenticated
	return d
}
