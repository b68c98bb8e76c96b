package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/service"
	"github.com/stretchr/testify/require"
)

type fakeAccessRepository struct {
	requests   []model.AccessRequest
	rows       map[int64]genmodel.AccessRequests
	created    []genmodel.AccessRequests
	approved   bool
	lastFilter model.AccessFilter

	updatedStatus genmodel.AccessStatus
	revokedAt     *time.Time
}

func (f *fakeAccessRepository) ListAccessRequests(ctx context.Context, filter model.AccessFilter) ([]model.AccessRequest, error) {
	f.lastFilter = filter
	return f.requests, nil
}

func (f *fakeAccessRepository) GetAccessRequestRow(ctx context.Context, accessID int64) (genmodel.AccessRequests, error) {
	row, ok := f.rows[accessID]
	if !ok {
		return genmodel.AccessRequests{}, pgx.ErrNoRows
	}
	return row, nil
}

func (f *fakeAccessRepository) CreateAccessRequest(ctx context.Context, req genmodel.AccessRequests) (int64, error) {
	f.created = append(f.created, req)
	return int64(len(f.created)), nil
}

func (f *fakeAccessRepository) UpdateAccessStatus(ctx context.Context, accessID int64, status genmodel.AccessStatus, revokedAt *time.Time) error {
	f.updatedStatus = status
	f.revokedAt = revokedAt
	return nil
}

func (f *fakeAccessRepository) HasApprovedAccess(ctx context.Context, patientUserID, doctorUserID uuid.UUID) (bool, error) {
	return f.approved, nil
}

type fakeUserRepository struct {
	doctor genmodel.DoctorProfiles
	err    error
}

func (f *fakeUserRepository) GetUser(ctx context.Context, filter genmodel.Users) (genmodel.Users, error) {
	return genmodel.Users{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) CreatePatientAccount(ctx context.Context, user genmodel.Users, patient genmodel.PatientProfiles) error {
	return nil
}

func (f *fakeUserRepository) CreateDoctorAccount(ctx context.Context, user genmodel.Users, doctor genmodel.DoctorProfiles) error {
	return nil
}

func (f *fakeUserRepository) GetPatientProfile(ctx context.Context, filter genmodel.PatientProfiles) (genmodel.PatientProfiles, error) {
	return genmodel.PatientProfiles{}, pgx.ErrNoRows
}

func (f *fakeUserRepository) GetDoctorProfile(ctx context.Context, filter genmodel.DoctorProfiles) (genmodel.DoctorProfiles, error) {
	if f.err != nil {
		return genmodel.DoctorProfiles{}, f.err
	}
	return f.doctor, nil
}

func (f *fakeUserRepository) UpdateUserPhone(ctx context.Context, userID uuid.UUID, phone *string) error {
	return nil
}

func (f *fakeUserRepository) UpdatePatientProfile(ctx context.Context, patient genmodel.PatientProfiles) error {
	return nil
}

func (f *fakeUserRepository) UpdateDoctorProfile(ctx context.Context, doctor genmodel.DoctorProfiles) error {
	return nil
}

func profileContext(userID uuid.UUID, role profile.Role) context.Context {
	return context.WithValue(context.Background(), profile.ProfileKey, profile.Profile{
		UserID: userID.String(),
		Role:   role,
	})
}

func TestGrantAccessTemporaryExpiry(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()
	doctorID := uuid.New()

	accessRepo := &fakeAccessRepository{
		requests: []model.AccessRequest{{ID: 1, AccessType: model.AccessTypeTemporary, Status: model.AccessStatusApproved}},
	}
	userRepo := &fakeUserRepository{doctor: genmodel.DoctorProfiles{UserID: doctorID, DoctorID: "DOC-1111-2222", IsVerified: true}}

	svc := service.NewAccessService(accessRepo, userRepo)

	granted, err := svc.GrantAccess(profileContext(patientID, profile.Patient), model.CreateAccessRequest{
		DoctorID:   "DOC-1111-2222",
		AccessType: model.AccessTypeTemporary,
	})
	require.NoError(t, err)
	require.Equal(t, model.AccessStatusApproved, granted.Status)

	require.Len(t, accessRepo.created, 1)
	created := accessRepo.created[0]
	require.Equal(t, patientID, created.PatientUserID)
	require.Equal(t, doctorID, created.DoctorUserID)
	require.Equal(t, genmodel.AccessStatus_Approved, created.Status)

	// Temporary grants carry a deadline a day out; other types never expire.
	require.NotNil(t, created.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), *created.ExpiresAt, time.Minute)
}

func TestGrantAccessFullHasNoExpiry(t *testing.T) {
	t.Parallel()

	accessRepo := &fakeAccessRepository{requests: []model.AccessRequest{{ID: 1}}}
	userRepo := &fakeUserRepository{doctor: genmodel.DoctorProfiles{UserID: uuid.New(), DoctorID: "DOC-1111-2222"}}

	svc := service.NewAccessService(accessRepo, userRepo)

	_, err := svc.GrantAccess(profileContext(uuid.New(), profile.Patient), model.CreateAccessRequest{
		DoctorID:   "DOC-1111-2222",
		AccessType: model.AccessTypeFull,
	})
	require.NoError(t, err)
	require.Len(t, accessRepo.created, 1)
	require.Nil(t, accessRepo.created[0].ExpiresAt)
}

func TestGrantAccessRequiresPatient(t *testing.T) {
	t.Parallel()

	svc := service.NewAccessService(&fakeAccessRepository{}, &fakeUserRepository{})

	_, err := svc.GrantAccess(profileContext(uuid.New(), profile.Doctor), model.CreateAccessRequest{
		DoctorID:   "DOC-1111-2222",
		AccessType: model.AccessTypeFull,
	})
	require.ErrorIs(t, err, model.ErrResourceNotAllowed)
}

func TestGrantAccessUnknownDoctor(t *testing.T) {
	t.Parallel()

	svc := service.NewAccessService(&fakeAccessRepository{}, &fakeUserRepository{err: pgx.ErrNoRows})

	_, err := svc.GrantAccess(profileContext(uuid.New(), profile.Patient), model.CreateAccessRequest{
		DoctorID:   "DOC-0000-0000",
		AccessType: model.AccessTypeFull,
	})

	var fieldErrs model.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "doctor_id")
}

func TestGrantAccessDuplicate(t *testing.T) {
	t.Parallel()

	accessRepo := &fakeAccessRepository{approved: true}
	userRepo := &fakeUserRepository{doctor: genmodel.DoctorProfiles{UserID: uuid.New(), DoctorID: "DOC-1111-2222"}}

	svc := service.NewAccessService(accessRepo, userRepo)

	_, err := svc.GrantAccess(profileContext(uuid.New(), profile.Patient), model.CreateAccessRequest{
		DoctorID:   "DOC-1111-2222",
		AccessType: model.AccessTypeFull,
	})

	var fieldErrs model.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "doctor_id")
	require.Empty(t, accessRepo.created)
}

func TestRevokeAccess(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()
	accessRepo := &fakeAccessRepository{
		rows: map[int64]genmodel.AccessRequests{
			7: {AccessID: 7, PatientUserID: patientID, Status: genmodel.AccessStatus_Approved},
		},
	}

	svc := service.NewAccessService(accessRepo, &fakeUserRepository{})

	res, err := svc.RevokeAccess(profileContext(patientID, profile.Patient), 7)
	require.NoError(t, err)
	require.EqualValues(t, 7, res.ID)
	require.Equal(t, model.AccessStatusRevoked, res.Status)

	require.Equal(t, genmodel.AccessStatus_Revoked, accessRepo.updatedStatus)
	require.NotNil(t, accessRepo.revokedAt)
}

func TestRevokeAccessOwnership(t *testing.T) {
	t.Parallel()

	accessRepo := &fakeAccessRepository{
		rows: map[int64]genmodel.AccessRequests{
			7: {AccessID: 7, PatientUserID: uuid.New(), Status: genmodel.AccessStatus_Approved},
		},
	}

	svc := service.NewAccessService(accessRepo, &fakeUserRepository{})

	// A patient can only revoke grants on their own records.
	_, err := svc.RevokeAccess(profileContext(uuid.New(), profile.Patient), 7)
	require.ErrorIs(t, err, model.ErrResourceNotAllowed)
}

func TestRevokeAccessAlreadyRevoked(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()
	accessRepo := &fakeAccessRepository{
		rows: map[int64]genmodel.AccessRequests{
			7: {AccessID: 7, PatientUserID: patientID, Status: genmodel.AccessStatus_Revoked},
		},
	}

	svc := service.NewAccessService(accessRepo, &fakeUserRepository{})

	_, err := svc.RevokeAccess(profileContext(patientID, profile.Patient), 7)

	var fieldErrs model.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "status")
}

func TestRevokeAccessNotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewAccessService(&fakeAccessRepository{}, &fakeUserRepository{})

	_, err := svc.RevokeAccess(profileContext(uuid.New(), profile.Patient), 99)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestListAccessRequestsRoleScoped(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()
	accessRepo := &fakeAccessRepository{}

	svc := service.NewAccessService(accessRepo, &fakeUserRepository{})

	_, err := svc.ListAccessRequests(profileContext(patientID, profile.Patient))
	require.NoError(t, err)
	require.Equal(t, patientID, accessRepo.lastFilter.PatientUserID)
	require.Equal(t, uuid.Nil, accessRepo.lastFilter.DoctorUserID)

	doctorID := uuid.New()
	_, err = svc.ListAccessRequests(profileContext(doctorID, profile.Doctor))
	require.NoError(t, err)
	require.Equal(t, doctorID, accessRepo.lastFilter.DoctorUserID)
	require.Equal(t, uuid.Nil, accessRepo.lastFilter.PatientUserID)
}
