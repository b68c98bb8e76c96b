package service

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/google"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/repository"
)

type Record interface {
	ListRecords(ctx context.Context) ([]model.MedicalRecord, error)
	GetRecord(ctx context.Context, recordID int64) (model.MedicalRecord, error)
	CreateRecord(ctx context.Context, req model.CreateRecordRequest) (model.MedicalRecord, error)
	ToggleVisibility(ctx context.Context, recordID int64) (model.ToggleVisibilityResponse, error)
	GetPatientRecords(ctx context.Context, healthID string) (model.PatientRecordsResponse, error)
	ExportRecords(ctx context.Context) ([]byte, error)
}

type record struct {
	recordRepository repository.Record
	userRepository   repository.User
	accessRepository repository.Access
	storage          google.Storage
}

func NewRecordService(
	recordRepository repository.Record,
	userRepository repository.User,
	accessRepository repository.Access,
	storage google.Storage,
) Record {
	return &record{
		recordRepository: recordRepository,
		userRepository:   userRepository,
		accessRepository: accessRepository,
		storage:          storage,
	}
}

// ListRecords is role scoped: patients see every record of their own,
// doctors only the records they authored.
func (s *record) ListRecords(ctx context.Context) ([]model.MedicalRecord, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := s.ownRecordFilter(userProfile)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepository.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.signDocuments(records)
	return records, nil
}

func (s *record) GetRecord(ctx context.Context, recordID int64) (model.MedicalRecord, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return model.MedicalRecord{}, err
	}

	row, err := s.recordRepository.GetRecordRow(ctx, recordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.MedicalRecord{}, model.ErrNotFound
	} else if err != nil {
		return model.MedicalRecord{}, err
	}

	userID := uuid.MustParse(userProfile.UserID)
	switch userProfile.Role {
	case profile.Patient:
		if row.PatientUserID != userID {
			return model.MedicalRecord{}, model.ErrResourceNotAllowed
		}
	case profile.Doctor:
		if row.DoctorUserID != userID {
			allowed, err := s.accessRepository.HasApprovedAccess(ctx, row.PatientUserID, userID)
			if err != nil {
				return model.MedicalRecord{}, err
			}
			if !allowed {
				return model.MedicalRecord{}, model.ErrResourceNotAllowed
			}
		}
	default:
		return model.MedicalRecord{}, model.ErrResourceNotAllowed
	}

	records, err := s.recordRepository.ListRecords(ctx, model.RecordFilter{RecordID: recordID})
	if err != nil {
		return model.MedicalRecord{}, err
	}
	if len(records) == 0 {
		return model.MedicalRecord{}, model.ErrNotFound
	}

	s.signDocuments(records)
	return records[0], nil
}

func (s *record) CreateRecord(ctx context.Context, req model.CreateRecordRequest) (model.MedicalRecord, error) {
	userProfile, err := profile.UseDoctorProfile(ctx)
	if err != nil {
		return model.MedicalRecord{}, model.ErrResourceNotAllowed
	}

	doctorUserID := uuid.MustParse(userProfile.UserID)

	doctor, err := s.userRepository.GetDoctorProfile(ctx, genmodel.DoctorProfiles{UserID: doctorUserID})
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.MedicalRecord{}, err
	}
	if !doctor.IsVerified {
		return model.MedicalRecord{}, model.ErrResourceNotAllowed
	}

	patient, err := s.userRepository.GetPatientProfile(ctx, genmodel.PatientProfiles{HealthID: req.PatientHealthID})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.MedicalRecord{}, model.FieldErrors{"patient_health_id": {"Patient not found."}}
	} else if err != nil {
		return model.MedicalRecord{}, err
	}

	var document *string
	if req.Document != nil {
		path, err := s.storage.UploadFile(ctx, req.Document, google.MedicalDocumentDirectory)
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.MedicalRecord{}, err
		}
		document = &path
	}

	var recordType genmodel.RecordType
	if err = recordType.Scan(req.RecordType); err != nil {
		return model.MedicalRecord{}, model.FieldErrors{"record_type": {"Invalid record type."}}
	}

	recordID, err := s.recordRepository.CreateRecord(ctx, genmodel.MedicalRecords{
		PatientUserID: patient.UserID,
		DoctorUserID:  doctorUserID,
		RecordType:    recordType,
		Diagnosis:     req.Diagnosis,
		Notes:         req.Notes,
		Document:      document,
		IsVisible:     true,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return model.MedicalRecord{}, err
	}

	records, err := s.recordRepository.ListRecords(ctx, model.RecordFilter{RecordID: recordID})
	if err != nil {
		return model.MedicalRecord{}, err
	}
	if len(records) == 0 {
		return model.MedicalRecord{}, model.ErrNotFound
	}

	s.signDocuments(records)
	return records[0], nil
}

// ToggleVisibility is patient only: a patient may hide or unhide any of
// their own records from doctors.
func (s *record) ToggleVisibility(ctx context.Context, recordID int64) (model.ToggleVisibilityResponse, error) {
	userProfile, err := profile.UsePatientProfile(ctx)
	if err != nil {
		return model.ToggleVisibilityResponse{}, model.ErrResourceNotAllowed
	}

	row, err := s.recordRepository.GetRecordRow(ctx, recordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ToggleVisibilityResponse{}, model.ErrNotFound
	} else if err != nil {
		return model.ToggleVisibilityResponse{}, err
	}

	if row.PatientUserID != uuid.MustParse(userProfile.UserID) {
		return model.ToggleVisibilityResponse{}, model.ErrResourceNotAllowed
	}

	visible := !row.IsVisible
	if err = s.recordRepository.UpdateRecordVisibility(ctx, recordID, visible); err != nil {
		return model.ToggleVisibilityResponse{}, err
	}

	message := "Record hidden from doctors"
	if visible {
		message = "Record visible to doctors"
	}

	return model.ToggleVisibilityResponse{
		ID:        recordID,
		IsVisible: visible,
		Message:   message,
	}, nil
}

// GetPatientRecords returns the visible records of a patient to a doctor
// holding an approved access grant.
func (s *record) GetPatientRecords(ctx context.Context, healthID string) (model.PatientRecordsResponse, error) {
	userProfile, err := profile.UseDoctorProfile(ctx)
	if err != nil {
		return model.PatientRecordsResponse{}, model.ErrResourceNotAllowed
	}

	patient, err := s.userRepository.GetPatientProfile(ctx, genmodel.PatientProfiles{HealthID: healthID})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.PatientRecordsResponse{}, model.ErrNotFound
	} else if err != nil {
		return model.PatientRecordsResponse{}, err
	}

	doctorUserID := uuid.MustParse(userProfile.UserID)
	allowed, err := s.accessRepository.HasApprovedAccess(ctx, patient.UserID, doctorUserID)
	if err != nil {
		return model.PatientRecordsResponse{}, err
	}
	if !allowed {
		return model.PatientRecordsResponse{}, model.ErrResourceNotAllowed
	}

	records, err := s.recordRepository.ListRecords(ctx, model.RecordFilter{PatientUserID: patient.UserID, VisibleOnly: true})
	if err != nil {
		return model.PatientRecordsResponse{}, err
	}

	s.signDocuments(records)
	return model.PatientRecordsResponse{
		Patient: model.PatientSummary{
			HealthID: patient.HealthID,
			Name:     patient.FirstName + " " + patient.LastName,
			Age:      patient.Age,
		},
		Records: records,
	}, nil
}

// ExportRecords renders the caller's records as CSV.
func (s *record) ExportRecords(ctx context.Context) ([]byte, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := s.ownRecordFilter(userProfile)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepository.ListRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]model.RecordCSVRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.RecordCSVRow{
			ID:         rec.ID,
			Date:       rec.CreatedAt.Format("2006-01-02"),
			RecordType: rec.RecordTypeDisplay,
			Diagnosis:  rec.Diagnosis,
			Notes:      rec.Notes,
			DoctorName: rec.DoctorName,
			Hospital:   rec.Hospital,
			Visible:    rec.IsVisible,
		})
	}

	var buf bytes.Buffer
	if err = gocsv.Marshal(rows, &buf); err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *record) ownRecordFilter(userProfile profile.Profile) (model.RecordFilter, error) {
	userID := uuid.MustParse(userProfile.UserID)
	switch userProfile.Role {
	case profile.Patient:
		return model.RecordFilter{PatientUserID: userID}, nil
	case profile.Doctor:
		return model.RecordFilter{DoctorUserID: userID}, nil
	default:
		return model.RecordFilter{}, model.ErrResourceNotAllowed
	}
}

func (s *record) signDocuments(records []model.MedicalRecord) {
	for i, rec := range records {
		if rec.Document == nil {
			continue
		}
		if url, err := s.storage.GetSignedURL(*rec.Document); err == nil {
			records[i].Document = &url
		}
	}
}
