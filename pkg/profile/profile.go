package profile

import (
	"context"
	"fmt"
)

type Role string

const ProfileKey = "profile"

const (
	Patient Role = "PATIENT"
	Doctor  Role = "DOCTOR"
	Admin   Role = "ADMIN"
)

// Profile is the authenticated identity injected into the request context
// by the bearer-token middleware.
type Profile struct {
	UserID string `json:"userID"`
	Role   Role   `json:"role"`
}

func UseProfile(ctx context.Context) (Profile, error) {
	profile, ok := ctx.Value(ProfileKey).(Profile)
	if !ok {
		return Profile{}, fmt.Errorf(`unable to retrieve profile from context`)
	}
	return profile, nil
}

func UsePatientProfile(ctx context.Context) (Profile, error) {
	profile, err := UseProfile(ctx)
	if err != nil {
		return Profile{}, err
	}

	if profile.Role != Patient {
		return Profile{}, fmt.Errorf(`unable to retrieve patient profile from context`)
	}

	return profile, nil
}

func UseDoctorProfile(ctx context.Context) (Profile, error) {
	profile, err := UseProfile(ctx)
	if err != nil {
		return Profile{}, err
	}

	if profile.Role != Doctor {
		return Profile{}, fmt.Errorf(`unable to retrieve doctor profile from context`)
	}

	return profile, nil
}
