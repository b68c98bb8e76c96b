package client

import (
	"context"
	"errors"

	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/profile"
)

// BootstrapStatus is the outcome of a session bootstrap.
type BootstrapStatus string

const (
	// StatusUnauthenticated means there is no usable session; go to login.
	StatusUnauthenticated BootstrapStatus = "unauthenticated"
	// StatusWrongRole means the session belongs to the other role; go to
	// that role's dashboard, not to login.
	StatusWrongRole BootstrapStatus = "wrong_role"
	// StatusReady means the session is valid for the required role and the
	// profile is loaded.
	StatusReady BootstrapStatus = "ready"
	// StatusFailed means the profile fetch failed for a reason other than
	// authentication; the session has been dropped.
	StatusFailed BootstrapStatus = "failed"
)

const (
	loginPath            = "/login"
	patientDashboardPath = "/dashboard/patient"
	doctorDashboardPath  = "/dashboard/doctor"
)

// BootstrapResult is the explicit outcome of Bootstrap: status plus the path
// the caller should navigate to. Navigation is the caller's job.
type BootstrapResult struct {
	Status       BootstrapStatus
	RedirectPath string
	User         User
	Profile      *model.ProfileResponse
	Err          error
}

func dashboardPath(role profile.Role) string {
	if role == profile.Doctor {
		return doctorDashboardPath
	}
	return patientDashboardPath
}

// Bootstrap validates the stored session against the required role. Without
// an access token it answers immediately, with no network round trip.
// Otherwise it fetches a fresh profile (refreshing the session once if
// needed), checks the role and reports where the caller belongs.
func (c *Client) Bootstrap(ctx context.Context, requiredRole profile.Role) BootstrapResult {
	if c.session.AccessToken() == "" {
		return BootstrapResult{Status: StatusUnauthenticated, RedirectPath: loginPath}
	}

	// Tokens without a cached user mean the store was partially cleared
	// behind our back; treat the session as unusable.
	user, ok := c.session.User()
	if !ok {
		return BootstrapResult{Status: StatusUnauthenticated, RedirectPath: loginPath}
	}

	// The cached user settles the role check cheaply; a stale cache still
	// redirects to a dashboard whose own bootstrap re-validates.
	if user.Role != requiredRole {
		return BootstrapResult{
			Status:       StatusWrongRole,
			RedirectPath: dashboardPath(user.Role),
			User:         user,
		}
	}

	profileRes, err := c.GetProfile(ctx)
	if err != nil {
		// A session whose profile cannot load is unusable either way.
		c.session.Clear()
		if errors.Is(err, ErrSessionExpired) {
			return BootstrapResult{Status: StatusUnauthenticated, RedirectPath: loginPath, Err: err}
		}
		return BootstrapResult{Status: StatusFailed, RedirectPath: loginPath, Err: err}
	}

	// The fresh profile is authoritative: a stale cached role loses to it.
	if profileRes.Role != requiredRole {
		return BootstrapResult{
			Status:       StatusWrongRole,
			RedirectPath: dashboardPath(profileRes.Role),
			User:         user,
			Profile:      &profileRes,
		}
	}

	return BootstrapResult{
		Status:  StatusReady,
		User:    user,
		Profile: &profileRes,
	}
}
