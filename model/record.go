package model

import (
	"mime/multipart"
	"time"
)

const (
	RecordTypePrescription = "prescription"
	RecordTypeLab          = "lab"
	RecordTypeDiagnosis    = "diagnosis"
	RecordTypeImaging      = "imaging"
	RecordTypeProcedure    = "procedure"
	RecordTypeConsultation = "consultation"
	RecordTypeFollowUp     = "follow-up"
)

var recordTypeDisplays = map[string]string{
	RecordTypePrescription: "Prescription",
	RecordTypeLab:          "Lab Report",
	RecordTypeDiagnosis:    "Diagnosis",
	RecordTypeImaging:      "Imaging",
	RecordTypeProcedure:    "Procedure",
	RecordTypeConsultation: "Consultation",
	RecordTypeFollowUp:     "Follow-up",
}

func RecordTypeDisplay(recordType string) string {
	if display, ok := recordTypeDisplays[recordType]; ok {
		return display
	}
	return recordType
}

type MedicalRecord struct {
	ID                int64     `json:"id"`
	RecordType        string    `json:"record_type"`
	RecordTypeDisplay string    `json:"record_type_display"`
	Diagnosis         string    `json:"diagnosis"`
	Notes             string    `json:"notes"`
	Document          *string   `json:"document"`
	IsVisible         bool      `json:"is_visible"`
	DoctorName        string    `json:"doctor_name"`
	Hospital          string    `json:"hospital"`
	PatientName       string    `json:"patient_name"`
	PatientHealthID   string    `json:"patient_health_id"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateRecordRequest struct {
	PatientHealthID string                `json:"patient_health_id" form:"patient_health_id" validate:"required"`
	RecordType      string                `json:"record_type" form:"record_type" validate:"required,oneof=prescription lab diagnosis imaging procedure consultation follow-up"`
	Diagnosis       string                `json:"diagnosis" form:"diagnosis" validate:"required,max=500"`
	Notes           string                `json:"notes" form:"notes"`
	Document        *multipart.FileHeader `json:"-" form:"-"`
}

type ToggleVisibilityResponse struct {
	ID        int64  `json:"id"`
	IsVisible bool   `json:"is_visible"`
	Message   string `json:"message"`
}

type PatientRecordsResponse struct {
	Patient PatientSummary  `json:"patient"`
	Records []MedicalRecord `json:"records"`
}

// RecordCSVRow is the flattened projection used for the CSV export.
type RecordCSVRow struct {
	ID         int64  `csv:"id"`
	Date       string `csv:"date"`
	RecordType string `csv:"record_type"`
	Diagnosis  string `csv:"diagnosis"`
	Notes      string `csv:"notes"`
	DoctorName string `csv:"doctor_name"`
	Hospital   string `csv:"hospital"`
	Visible    bool   `csv:"visible"`
}
