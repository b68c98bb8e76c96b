package model

import "github.com/healthsecure/medichain-service/pkg/profile"

// TokenPair is the access/refresh pair issued on login and rotated on refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token pair plus the low-fidelity user projection
// that clients cache for role checks before the fresh profile fetch.
type LoginResponse struct {
	Access     string       `json:"access"`
	Refresh    string       `json:"refresh"`
	Email      string       `json:"email"`
	Role       profile.Role `json:"role"`
	Name       string       `json:"name"`
	HealthID   *string      `json:"health_id,omitempty"`
	DoctorID   *string      `json:"doctor_id,omitempty"`
	IsVerified *bool        `json:"is_verified,omitempty"`
}

type RegisterPatientRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Age       *int32 `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type RegisterPatientResponse struct {
	Message  string `json:"message"`
	HealthID string `json:"health_id"`
	Email    string `json:"email"`
}

type RegisterDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	MedicalLicense string `json:"medical_license" validate:"required,max=50"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Hospital       string `json:"hospital" validate:"required,max=200"`
	Phone          string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type RegisterDoctorResponse struct {
	Message  string `json:"message"`
	DoctorID string `json:"doctor_id"`
	Email    string `json:"email"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}
