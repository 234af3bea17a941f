package session

import "vidcall_server/pkg/constants"

// Views the gate knows about.
const (
	ViewLanding   = "landing"
	ViewDashboard = "dashboard"
)

// Decide returns where the client must go before rendering view, or ""
// when it may stay. Protected views need a session; the landing page
// forwards signed-in users to the dashboard.
func Decide(view string, authenticated bool) string {
	switch {
	case view == ViewDashboard && !authenticated:
		return constants.AUTH_PATH
	case view == ViewLanding && authenticated:
		return constants.DASHBOARD_PATH
	default:
		return ""
	}
}
