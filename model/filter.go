package model

import "github.com/google/uuid"

type RecordFilter struct {
	RecordID      int64
	PatientUserID uuid.UUID
	DoctorUserID  uuid.UUID
	VisibleOnly   bool
}

type AccessFilter struct {
	AccessID      int64
	PatientUserID uuid.UUID
	DoctorUserID  uuid.UUID
	Status        string
}
