package model

import "time"

const (
	AccessTypeFull      = "FULL"
	AccessTypeTemporary = "TEMPORARY"
	AccessTypeEmergency = "EMERGENCY"

	AccessStatusPending  = "PENDING"
	AccessStatusApproved = "APPROVED"
	AccessStatusRevoked  = "REVOKED"
)

var accessTypeDisplays = map[string]string{
	AccessTypeFull:      "Full Access",
	AccessTypeTemporary: "Temporary Access",
	AccessTypeEmergency: "Emergency Access",
}

func AccessTypeDisplay(accessType string) string {
	if display, ok := accessTypeDisplays[accessType]; ok {
		return display
	}
	return accessType
}

type AccessRequest struct {
	ID              int64      `json:"id"`
	PatientName     string     `json:"patient_name"`
	PatientHealthID string     `json:"patient_health_id"`
	DoctorName      string     `json:"doctor_name"`
	DoctorID        string     `json:"doctor_id"`
	Hospital        string     `json:"hospital"`
	AccessType      string     `json:"access_type"`
	AccessTypeName  string     `json:"access_type_display"`
	Status          string     `json:"status"`
	GrantedAt       time.Time  `json:"granted_at"`
	ExpiresAt       *time.Time `json:"expires_at"`
	RevokedAt       *time.Time `json:"revoked_at"`
}

type CreateAccessRequest struct {
	DoctorID   string `json:"doctor_id" validate:"required"`
	AccessType string `json:"access_type" validate:"required,oneof=FULL TEMPORARY EMERGENCY"`
}

type RevokeAccessResponse struct {
	ID      int64  `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
