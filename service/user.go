package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/google"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/pkg/util"
	"github.com/healthsecure/medichain-service/repository"
	"github.com/sourcegraph/conc/pool"
)

type User interface {
	GetProfile(ctx context.Context) (model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (model.ProfileResponse, error)
	GetDashboardStats(ctx context.Context) (model.DashboardStats, error)
	SearchPatient(ctx context.Context, healthID string) (model.PatientSummary, error)
}

type user struct {
	userRepository   repository.User
	recordRepository repository.Record
	storage          google.Storage
}

func NewUserService(
	userRepository repository.User,
	recordRepository repository.Record,
	storage google.Storage,
) User {
	return &user{
		userRepository:   userRepository,
		recordRepository: recordRepository,
		storage:          storage,
	}
}

func (s *user) GetProfile(ctx context.Context) (model.ProfileResponse, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	userID := uuid.MustParse(userProfile.UserID)
	userInfo, err := s.userRepository.GetUser(ctx, genmodel.Users{UserID: userID})
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.ProfileResponse{}, err
	}

	switch userProfile.Role {
	case profile.Patient:
		patient, err := s.userRepository.GetPatientProfile(ctx, genmodel.PatientProfiles{UserID: userID})
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.ProfileResponse{}, err
		}
		return model.ProfileResponse{Role: profile.Patient, Patient: s.patientProfile(userInfo, patient)}, nil

	case profile.Doctor:
		doctor, err := s.userRepository.GetDoctorProfile(ctx, genmodel.DoctorProfiles{UserID: userID})
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.ProfileResponse{}, err
		}
		return model.ProfileResponse{Role: profile.Doctor, Doctor: s.doctorProfile(userInfo, doctor)}, nil

	default:
		return model.ProfileResponse{}, model.ErrResourceNotAllowed
	}
}

func (s *user) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (model.ProfileResponse, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	userID := uuid.MustParse(userProfile.UserID)

	if req.Phone != nil {
		if err = s.userRepository.UpdateUserPhone(ctx, userID, req.Phone); err != nil {
			return model.ProfileResponse{}, err
		}
	}

	var picture *string
	if req.ProfilePicture != nil {
		path, err := s.storage.UploadFile(ctx, req.ProfilePicture, google.ProfilePictureDirectory)
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.ProfileResponse{}, err
		}
		picture = &path
	}

	switch userProfile.Role {
	case profile.Patient:
		if req.Specialization != nil || req.Hospital != nil {
			return model.ProfileResponse{}, model.FieldErrors{"specialization": {"Not editable for patients."}}
		}

		patient, err := s.userRepository.GetPatientProfile(ctx, genmodel.PatientProfiles{UserID: userID})
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.ProfileResponse{}, err
		}

		if req.FirstName != nil {
			patient.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			patient.LastName = *req.LastName
		}
		if req.Age != nil {
			patient.Age = req.Age
		}
		if picture != nil {
			if patient.ProfilePicture != nil {
				if err = s.storage.RemoveFile(ctx, *patient.ProfilePicture); err != nil {
					logger.Context(ctx).Warn(err)
				}
			}
			patient.ProfilePicture = picture
		}

		if err = s.userRepository.UpdatePatientProfile(ctx, patient); err != nil {
			return model.ProfileResponse{}, err
		}

	case profile.Doctor:
		if req.Age != nil {
			return model.ProfileResponse{}, model.FieldErrors{"age": {"Not editable for doctors."}}
		}

		doctor, err := s.userRepository.GetDoctorProfile(ctx, genmodel.DoctorProfiles{UserID: userID})
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.ProfileResponse{}, err
		}

		if req.FirstName != nil {
			doctor.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			doctor.LastName = *req.LastName
		}
		if req.Specialization != nil {
			doctor.Specialization = *req.Specialization
		}
		if req.Hospital != nil {
			doctor.Hospital = *req.Hospital
		}
		if picture != nil {
			if doctor.ProfilePicture != nil {
				if err = s.storage.RemoveFile(ctx, *doctor.ProfilePicture); err != nil {
					logger.Context(ctx).Warn(err)
				}
			}
			doctor.ProfilePicture = picture
		}

		if err = s.userRepository.UpdateDoctorProfile(ctx, doctor); err != nil {
			return model.ProfileResponse{}, err
		}

	default:
		return model.ProfileResponse{}, model.ErrResourceNotAllowed
	}

	return s.GetProfile(ctx)
}

func (s *user) GetDashboardStats(ctx context.Context) (stats model.DashboardStats, err error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return
	}

	userID := uuid.MustParse(userProfile.UserID)

	switch userProfile.Role {
	case profile.Patient:
		conc := pool.New().WithContext(ctx)
		conc.Go(func(ctx context.Context) error {
			total, err := s.recordRepository.CountRecords(ctx, model.RecordFilter{PatientUserID: userID})
			stats.TotalRecords = total
			return err
		})
		conc.Go(func(ctx context.Context) error {
			doctors, err := s.recordRepository.CountDistinctDoctors(ctx, userID)
			stats.UniqueDoctors = &doctors
			return err
		})
		conc.Go(func(ctx context.Context) error {
			visible, err := s.recordRepository.CountRecords(ctx, model.RecordFilter{PatientUserID: userID, VisibleOnly: true})
			stats.VisibleRecords = &visible
			return err
		})
		conc.Go(func(ctx context.Context) error {
			stats.LastVisit, err = s.recordRepository.LastRecordTime(ctx, model.RecordFilter{PatientUserID: userID})
			return err
		})
		if err = conc.Wait(); err != nil {
			logger.Context(ctx).Error(err)
			return model.DashboardStats{}, err
		}
		hidden := stats.TotalRecords - util.Value(stats.VisibleRecords)
		stats.HiddenRecords = &hidden

	case profile.Doctor:
		conc := pool.New().WithContext(ctx)
		conc.Go(func(ctx context.Context) error {
			total, err := s.recordRepository.CountRecords(ctx, model.RecordFilter{DoctorUserID: userID})
			stats.TotalRecords = total
			return err
		})
		conc.Go(func(ctx context.Context) error {
			patients, err := s.recordRepository.CountDistinctPatients(ctx, userID)
			stats.UniquePatients = &patients
			return err
		})
		conc.Go(func(ctx context.Context) error {
			stats.LastActivity, err = s.recordRepository.LastRecordTime(ctx, model.RecordFilter{DoctorUserID: userID})
			return err
		})
		if err = conc.Wait(); err != nil {
			logger.Context(ctx).Error(err)
			return model.DashboardStats{}, err
		}

	default:
		return model.DashboardStats{}, model.ErrResourceNotAllowed
	}

	return stats, nil
}

func (s *user) SearchPatient(ctx context.Context, healthID string) (model.PatientSummary, error) {
	patient, err := s.userRepository.GetPatientProfile(ctx, genmodel.PatientProfiles{HealthID: healthID})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.PatientSummary{}, model.ErrNotFound
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return model.PatientSummary{}, err
	}

	return model.PatientSummary{
		HealthID: patient.HealthID,
		Name:     patient.FirstName + " " + patient.LastName,
		Age:      patient.Age,
	}, nil
}

func (s *user) patientProfile(userInfo genmodel.Users, patient genmodel.PatientProfiles) *model.PatientProfile {
	res := &model.PatientProfile{
		HealthID:       patient.HealthID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		Age:            patient.Age,
		Email:          userInfo.Email,
		Phone:          util.Value(userInfo.Phone),
		ProfilePicture: patient.ProfilePicture,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
	if patient.ProfilePicture != nil {
		if url, err := s.storage.GetSignedURL(*patient.ProfilePicture); err == nil {
			res.ProfilePictureURL = &url
		}
	}
	return res
}

func (s *user) doctorProfile(userInfo genmodel.Users, doctor genmodel.DoctorProfiles) *model.DoctorProfile {
	res := &model.DoctorProfile{
		DoctorID:       doctor.DoctorID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		MedicalLicense: doctor.MedicalLicense,
		Specialization: doctor.Specialization,
		Hospital:       doctor.Hospital,
		IsVerified:     doctor.IsVerified,
		Email:          userInfo.Email,
		Phone:          util.Value(userInfo.Phone),
		ProfilePicture: doctor.ProfilePicture,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}
	if doctor.ProfilePicture != nil {
		if url, err := s.storage.GetSignedURL(*doctor.ProfilePicture); err == nil {
			res.ProfilePictureURL = &url
		}
	}
	return res
}
