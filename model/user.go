package model

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/healthsecure/medichain-service/pkg/profile"
)

type PatientProfile struct {
	HealthID          string     `json:"health_id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Age               *int32     `json:"age"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	ProfilePicture    *string    `json:"profile_picture,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type DoctorProfile struct {
	DoctorID          string     `json:"doctor_id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	MedicalLicense    string     `json:"medical_license"`
	Specialization    string     `json:"specialization"`
	Hospital          string     `json:"hospital"`
	IsVerified        bool       `json:"is_verified"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	ProfilePicture    *string    `json:"profile_picture,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// ProfileResponse is a tagged union: exactly one of Patient or Doctor is set,
// selected by Role. On the wire it is {"role": ..., "profile": ...}.
type ProfileResponse struct {
	Role    profile.Role
	Patient *PatientProfile
	Doctor  *DoctorProfile
}

type profileEnvelope struct {
	Role    profile.Role    `json:"role"`
	Profile json.RawMessage `json:"profile"`
}

func (p ProfileResponse) MarshalJSON() ([]byte, error) {
	var inner any
	switch p.Role {
	case profile.Patient:
		inner = p.Patient
	case profile.Doctor:
		inner = p.Doctor
	default:
		return nil, fmt.Errorf("profile response: unsupported role %q", p.Role)
	}

	raw, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	return json.Marshal(profileEnvelope{Role: p.Role, Profile: raw})
}

func (p *ProfileResponse) UnmarshalJSON(data []byte) error {
	var envelope profileEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	*p = ProfileResponse{Role: envelope.Role}
	switch envelope.Role {
	case profile.Patient:
		p.Patient = &PatientProfile{}
		return json.Unmarshal(envelope.Profile, p.Patient)
	case profile.Doctor:
		p.Doctor = &DoctorProfile{}
		return json.Unmarshal(envelope.Profile, p.Doctor)
	default:
		return fmt.Errorf("profile response: unsupported role %q", envelope.Role)
	}
}

// UpdateProfileRequest is a partial update: nil fields are left untouched.
// Doctor-only fields are rejected for patients and vice versa.
type UpdateProfileRequest struct {
	FirstName      *string               `json:"first_name,omitempty" form:"first_name"`
	LastName       *string               `json:"last_name,omitempty" form:"last_name"`
	Age            *int32                `json:"age,omitempty" form:"age"`
	Phone          *string               `json:"phone,omitempty" form:"phone"`
	Specialization *string               `json:"specialization,omitempty" form:"specialization"`
	Hospital       *string               `json:"hospital,omitempty" form:"hospital"`
	ProfilePicture *multipart.FileHeader `json:"-" form:"-"`
}

type PatientSummary struct {
	HealthID string `json:"health_id"`
	Name     string `json:"name"`
	Age      *int32 `json:"age"`
}
