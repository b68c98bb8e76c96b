package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/generator"
	"github.com/healthsecure/medichain-service/pkg/logger"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/pkg/util"
	"github.com/healthsecure/medichain-service/repository"
	"golang.org/x/crypto/bcrypt"
)

type Authen interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	RegisterPatient(ctx context.Context, req model.RegisterPatientRequest) (model.RegisterPatientResponse, error)
	RegisterDoctor(ctx context.Context, req model.RegisterDoctorRequest) (model.RegisterDoctorResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (model.TokenPair, error)
	RevokeToken(ctx context.Context, jwt string) error
}

type authen struct {
	userRepository  repository.User
	cacheRepository repository.Cache
	jwtService      JWTService
}

func NewAuthenService(
	userRepository repository.User,
	cacheRepository repository.Cache,
	jwtService JWTService,
) Authen {
	return &authen{
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		jwtService:      jwtService,
	}
}

func (s *authen) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.userRepository.GetUser(ctx, genmodel.Users{Email: req.Email})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return model.LoginResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	pair, err := s.createToken(ctx, user.UserID.String(), profile.Role(user.Role))
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.LoginResponse{}, err
	}

	res := model.LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		Email:   user.Email,
		Role:    profile.Role(user.Role),
	}

	switch profile.Role(user.Role) {
	case profile.Patient:
		patient, err := s.userRepository.GetPatientProfile(ctx, genmodel.PatientProfiles{UserID: user.UserID})
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.LoginResponse{}, err
		}
		res.Name = patient.FirstName + " " + patient.LastName
		res.HealthID = util.Pointer(patient.HealthID)

	case profile.Doctor:
		doctor, err := s.userRepository.GetDoctorProfile(ctx, genmodel.DoctorProfiles{UserID: user.UserID})
		if err != nil {
			logger.Context(ctx).Error(err)
			return model.LoginResponse{}, err
		}
		res.Name = "Dr. " + doctor.FirstName + " " + doctor.LastName
		res.DoctorID = util.Pointer(doctor.DoctorID)
		res.IsVerified = util.Pointer(doctor.IsVerified)
	}

	return res, nil
}

func (s *authen) RegisterPatient(ctx context.Context, req model.RegisterPatientRequest) (model.RegisterPatientResponse, error) {
	if err := s.ensureEmailAvailable(ctx, req.Email); err != nil {
		return model.RegisterPatientResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.RegisterPatientResponse{}, err
	}

	now := time.Now()
	userID := uuid.MustParse(generator.UUID())
	healthID := generator.HealthID()

	user := genmodel.Users{
		UserID:       userID,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         genmodel.Role_Patient,
		CreatedAt:    now,
	}
	if req.Phone != "" {
		user.Phone = util.Pointer(req.Phone)
	}

	patient := genmodel.PatientProfiles{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		HealthID:  healthID,
		CreatedAt: now,
	}

	if err = s.userRepository.CreatePatientAccount(ctx, user, patient); err != nil {
		if model.IsConflictError(err) {
			return model.RegisterPatientResponse{}, model.FieldErrors{"email": {"A user with this email already exists."}}
		}
		logger.Context(ctx).Error(err)
		return model.RegisterPatientResponse{}, err
	}

	return model.RegisterPatientResponse{
		Message:  "Registration successful",
		HealthID: healthID,
		Email:    req.Email,
	}, nil
}

func (s *authen) RegisterDoctor(ctx context.Context, req model.RegisterDoctorRequest) (model.RegisterDoctorResponse, error) {
	if err := s.ensureEmailAvailable(ctx, req.Email); err != nil {
		return model.RegisterDoctorResponse{}, err
	}

	_, err := s.userRepository.GetDoctorProfile(ctx, genmodel.DoctorProfiles{MedicalLicense: req.MedicalLicense})
	if err == nil {
		return model.RegisterDoctorResponse{}, model.FieldErrors{"medical_license": {"A doctor with this license number already exists."}}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		logger.Context(ctx).Error(err)
		return model.RegisterDoctorResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.RegisterDoctorResponse{}, err
	}

	now := time.Now()
	userID := uuid.MustParse(generator.UUID())
	doctorID := generator.DoctorID()

	user := genmodel.Users{
		UserID:       userID,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         genmodel.Role_Doctor,
		CreatedAt:    now,
	}
	if req.Phone != "" {
		user.Phone = util.Pointer(req.Phone)
	}

	doctor := genmodel.DoctorProfiles{
		UserID:         userID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MedicalLicense: req.MedicalLicense,
		Specialization: req.Specialization,
		Hospital:       req.Hospital,
		DoctorID:       doctorID,
		IsVerified:     false,
		CreatedAt:      now,
	}

	if err = s.userRepository.CreateDoctorAccount(ctx, user, doctor); err != nil {
		if model.IsConflictError(err) {
			return model.RegisterDoctorResponse{}, model.FieldErrors{"email": {"A user with this email already exists."}}
		}
		logger.Context(ctx).Error(err)
		return model.RegisterDoctorResponse{}, err
	}

	return model.RegisterDoctorResponse{
		Message:  "Registration successful, pending license verification",
		DoctorID: doctorID,
		Email:    req.Email,
	}, nil
}

// RefreshToken rotates the whole session: both cached tokens are replaced and
// a new refresh token is always returned alongside the access token.
func (s *authen) RefreshToken(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	refreshClaim, err := s.jwtService.DecodeRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.TokenPair{}, err
	}

	found, err := s.cacheRepository.ExistsToken(ctx, refreshClaim.UserID, refreshClaim.SessionID, refreshClaim.Role, profile.Refresh)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.TokenPair{}, err
	}

	if !found {
		err = fmt.Errorf("refreshToken is not found")
		logger.Context(ctx).Error(err)
		return model.TokenPair{}, err
	}

	pair, err := s.createToken(ctx, refreshClaim.UserID, refreshClaim.Role)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.TokenPair{}, err
	}

	if err = s.cacheRepository.DeleteToken(ctx, refreshClaim.UserID, refreshClaim.SessionID, refreshClaim.Role, profile.Access); err != nil {
		logger.Context(ctx).Error(err)
		return model.TokenPair{}, err
	}

	if err = s.cacheRepository.DeleteToken(ctx, refreshClaim.UserID, refreshClaim.SessionID, refreshClaim.Role, profile.Refresh); err != nil {
		logger.Context(ctx).Error(err)
		return model.TokenPair{}, err
	}

	return pair, nil
}

func (s *authen) RevokeToken(ctx context.Context, jwt string) error {
	accessToken, err := s.jwtService.DecodeAccessToken(ctx, jwt)
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}

	if err := s.cacheRepository.DeleteToken(ctx, accessToken.UserID, accessToken.SessionID, accessToken.Role, profile.Access); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}

	if err := s.cacheRepository.DeleteToken(ctx, accessToken.UserID, accessToken.SessionID, accessToken.Role, profile.Refresh); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}

	return nil
}

func (s *authen) ensureEmailAvailable(ctx context.Context, email string) error {
	_, err := s.userRepository.GetUser(ctx, genmodel.Users{Email: email})
	if err == nil {
		return model.FieldErrors{"email": {"A user with this email already exists."}}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (s *authen) createToken(ctx context.Context, userID string, role profile.Role) (pair model.TokenPair, err error) {
	accessToken, refreshToken := s.jwtService.EncodeJWT(ctx, userID, role)

	pair.Access, err = s.jwtService.SignedJWT(ctx, accessToken)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	pair.Refresh, err = s.jwtService.SignedJWT(ctx, refreshToken)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	err = s.cacheRepository.CreateAccessToken(ctx, accessToken)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	err = s.cacheRepository.CreateRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	return
}
