package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/repository"
)

// temporaryAccessDuration bounds TEMPORARY grants; FULL and EMERGENCY
// grants do not expire on their own.
const temporaryAccessDuration = 24 * time.Hour

type Access interface {
	ListAccessRequests(ctx context.Context) ([]model.AccessRequest, error)
	GrantAccess(ctx context.Context, req model.CreateAccessRequest) (model.AccessRequest, error)
	RevokeAccess(ctx context.Context, accessID int64) (model.RevokeAccessResponse, error)
}

type access struct {
	accessRepository repository.Access
	userRepository   repository.User
}

func NewAccessService(
	accessRepository repository.Access,
	userRepository repository.User,
) Access {
	return &access{
		accessRepository: accessRepository,
		userRepository:   userRepository,
	}
}

func (s *access) ListAccessRequests(ctx context.Context) ([]model.AccessRequest, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return nil, err
	}

	userID := uuid.MustParse(userProfile.UserID)

	var filter model.AccessFilter
	switch userProfile.Role {
	case profile.Patient:
		filter.PatientUserID = userID
	case profile.Doctor:
		filter.DoctorUserID = userID
	default:
		return nil, model.ErrResourceNotAllowed
	}

	return s.accessRepository.ListAccessRequests(ctx, filter)
}

// GrantAccess is patient initiated: the patient grants a doctor access to
// their visible records, approved immediately.
func (s *access) GrantAccess(ctx context.Context, req model.CreateAccessRequest) (model.AccessRequest, error) {
	userProfile, err := profile.UsePatientProfile(ctx)
	if err != nil {
		return model.AccessRequest{}, model.ErrResourceNotAllowed
	}

	patientUserID := uuid.MustParse(userProfile.UserID)

	doctor, err := s.userRepository.GetDoctorProfile(ctx, genmodel.DoctorProfiles{DoctorID: req.DoctorID})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AccessRequest{}, model.FieldErrors{"doctor_id": {"Doctor not found."}}
	} else if err != nil {
		return model.AccessRequest{}, err
	}

	allowed, err := s.accessRepository.HasApprovedAccess(ctx, patientUserID, doctor.UserID)
	if err != nil {
		return model.AccessRequest{}, err
	}
	if allowed {
		return model.AccessRequest{}, model.FieldErrors{"doctor_id": {"This doctor already has access."}}
	}

	var accessType genmodel.AccessType
	if err = accessType.Scan(req.AccessType); err != nil {
		return model.AccessRequest{}, model.FieldErrors{"access_type": {"Invalid access type."}}
	}

	now := time.Now()
	grant := genmodel.AccessRequests{
		PatientUserID: patientUserID,
		DoctorUserID:  doctor.UserID,
		AccessType:    accessType,
		Status:        genmodel.AccessStatus_Approved,
		GrantedAt:     now,
	}
	if accessType == genmodel.AccessType_Temporary {
		expiresAt := now.Add(temporaryAccessDuration)
		grant.ExpiresAt = &expiresAt
	}

	accessID, err := s.accessRepository.CreateAccessRequest(ctx, grant)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.AccessRequest{}, err
	}

	requests, err := s.accessRepository.ListAccessRequests(ctx, model.AccessFilter{AccessID: accessID})
	if err != nil {
		return model.AccessRequest{}, err
	}
	if len(requests) == 0 {
		return model.AccessRequest{}, model.ErrNotFound
	}

	return requests[0], nil
}

func (s *access) RevokeAccess(ctx context.Context, accessID int64) (model.RevokeAccessResponse, error) {
	userProfile, err := profile.UsePatientProfile(ctx)
	if err != nil {
		return model.RevokeAccessResponse{}, model.ErrResourceNotAllowed
	}

	row, err := s.accessRepository.GetAccessRequestRow(ctx, accessID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.RevokeAccessResponse{}, model.ErrNotFound
	} else if err != nil {
		return model.RevokeAccessResponse{}, err
	}

	if row.PatientUserID != uuid.MustParse(userProfile.UserID) {
		return model.RevokeAccessResponse{}, model.ErrResourceNotAllowed
	}

	if row.Status == genmodel.AccessStatus_Revoked {
		return model.RevokeAccessResponse{}, model.FieldErrors{"status": {"Access already revoked."}}
	}

	now := time.Now()
	if err = s.accessRepository.UpdateAccessStatus(ctx, accessID, genmodel.AccessStatus_Revoked, &now); err != nil {
		return model.RevokeAccessResponse{}, err
	}

	return model.RevokeAccessResponse{
		ID:      accessID,
		Status:  model.AccessStatusRevoked,
		Message: "Access revoked",
	}, nil
}
