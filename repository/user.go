package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/.gen/medichain/public/table"
	"github.com/healthsecure/medichain-service/pkg/database/postgresql"
	"github.com/healthsecure/medichain-service/pkg/logger"
)

type User interface {
	GetUser(ctx context.Context, filter genmodel.Users) (genmodel.Users, error)
	CreatePatientAccount(ctx context.Context, user genmodel.Users, patient genmodel.PatientProfiles) error
	CreateDoctorAccount(ctx context.Context, user genmodel.Users, doctor genmodel.DoctorProfiles) error
	GetPatientProfile(ctx context.Context, filter genmodel.PatientProfiles) (genmodel.PatientProfiles, error)
	GetDoctorProfile(ctx context.Context, filter genmodel.DoctorProfiles) (genmodel.DoctorProfiles, error)
	UpdateUserPhone(ctx context.Context, userID uuid.UUID, phone *string) error
	UpdatePatientProfile(ctx context.Context, patient genmodel.PatientProfiles) error
	UpdateDoctorProfile(ctx context.Context, doctor genmodel.DoctorProfiles) error
}

type user struct {
	pgPool *pgxpool.Pool
}

func NewUserRepository(pgPool *pgxpool.Pool) User {
	return &user{pgPool: pgPool}
}

func (r *user) GetUser(ctx context.Context, filter genmodel.Users) (user genmodel.Users, err error) {
	users := table.Users

	var condition postgres.BoolExpression
	if filter.UserID != uuid.Nil {
		condition = users.UserID.EQ(postgres.UUID(filter.UserID))
	} else if filter.Email != "" {
		condition = users.Email.EQ(postgres.String(filter.Email))
	} else {
		err = errors.New("filter must be provided")
		logger.Context(ctx).Error(err)
		return
	}

	query, args := users.
		SELECT(users.UserID, users.Email, users.PasswordHash, users.Role, users.Phone, users.CreatedAt, users.UpdatedAt).
		WHERE(condition).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Role, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Context(ctx).Error(err)
		}
		return
	}

	return user, nil
}

func (r *user) CreatePatientAccount(ctx context.Context, user genmodel.Users, patient genmodel.PatientProfiles) error {
	return postgresql.Commit(ctx, r.pgPool, func(ctx context.Context, tx pgx.Tx) error {
		if err := createUser(ctx, tx, user); err != nil {
			return err
		}

		patients := table.PatientProfiles
		sql, args := patients.
			INSERT(patients.UserID, patients.FirstName, patients.LastName, patients.Age, patients.HealthID, patients.CreatedAt).
			MODEL(patient).
			Sql()
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Context(ctx).Error(err)
			return err
		}
		return nil
	})
}

func (r *user) CreateDoctorAccount(ctx context.Context, user genmodel.Users, doctor genmodel.DoctorProfiles) error {
	return postgresql.Commit(ctx, r.pgPool, func(ctx context.Context, tx pgx.Tx) error {
		if err := createUser(ctx, tx, user); err != nil {
			return err
		}

		doctors := table.DoctorProfiles
		sql, args := doctors.
			INSERT(
				doctors.UserID,
				doctors.FirstName,
				doctors.LastName,
				doctors.MedicalLicense,
				doctors.Specialization,
				doctors.Hospital,
				doctors.DoctorID,
				doctors.IsVerified,
				doctors.CreatedAt,
			).
			MODEL(doctor).
			Sql()
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Context(ctx).Error(err)
			return err
		}
		return nil
	})
}

func createUser(ctx context.Context, tx pgx.Tx, user genmodel.Users) error {
	users := table.Users
	sql, args := users.
		INSERT(users.UserID, users.Email, users.PasswordHash, users.Role, users.Phone, users.CreatedAt).
		MODEL(user).
		Sql()
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (r *user) GetPatientProfile(ctx context.Context, filter genmodel.PatientProfiles) (patient genmodel.PatientProfiles, err error) {
	patients := table.PatientProfiles

	var condition postgres.BoolExpression
	if filter.UserID != uuid.Nil {
		condition = patients.UserID.EQ(postgres.UUID(filter.UserID))
	} else if filter.HealthID != "" {
		condition = patients.HealthID.EQ(postgres.String(filter.HealthID))
	} else {
		err = errors.New("filter must be provided")
		logger.Context(ctx).Error(err)
		return
	}

	query, args := patients.
		SELECT(
			patients.UserID,
			patients.FirstName,
			patients.LastName,
			patients.Age,
			patients.HealthID,
			patients.ProfilePicture,
			patients.CreatedAt,
			patients.UpdatedAt,
		).
		WHERE(condition).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(
		&patient.UserID,
		&patient.FirstName,
		&patient.LastName,
		&patient.Age,
		&patient.HealthID,
		&patient.ProfilePicture,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Context(ctx).Error(err)
		}
		return
	}

	return patient, nil
}

func (r *user) GetDoctorProfile(ctx context.Context, filter genmodel.DoctorProfiles) (doctor genmodel.DoctorProfiles, err error) {
	doctors := table.DoctorProfiles

	var condition postgres.BoolExpression
	if filter.UserID != uuid.Nil {
		condition = doctors.UserID.EQ(postgres.UUID(filter.UserID))
	} else if filter.DoctorID != "" {
		condition = doctors.DoctorID.EQ(postgres.String(filter.DoctorID))
	} else if filter.MedicalLicense != "" {
		condition = doctors.MedicalLicense.EQ(postgres.String(filter.MedicalLicense))
	} else {
		err = errors.New("filter must be provided")
		logger.Context(ctx).Error(err)
		return
	}

	query, args := doctors.
		SELECT(
			doctors.UserID,
			doctors.FirstName,
			doctors.LastName,
			doctors.MedicalLicense,
			doctors.Specialization,
			doctors.Hospital,
			doctors.DoctorID,
			doctors.IsVerified,
			doctors.ProfilePicture,
			doctors.CreatedAt,
			doctors.UpdatedAt,
		).
		WHERE(condition).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(
		&doctor.UserID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.MedicalLicense,
		&doctor.Specialization,
		&doctor.Hospital,
		&doctor.DoctorID,
		&doctor.IsVerified,
		&doctor.ProfilePicture,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Context(ctx).Error(err)
		}
		return
	}

	return doctor, nil
}

func (r *user) UpdateUserPhone(ctx context.Context, userID uuid.UUID, phone *string) error {
	users := table.Users

	var phoneExpr postgres.Expression = postgres.NULL
	if phone != nil {
		phoneExpr = postgres.String(*phone)
	}

	sql, args := users.
		UPDATE(users.Phone, users.UpdatedAt).
		SET(phoneExpr, postgres.TimestampzT(time.Now())).
		WHERE(users.UserID.EQ(postgres.UUID(userID))).
		Sql()
	if _, err := r.pgPool.Exec(ctx, sql, args...); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (r *user) UpdatePatientProfile(ctx context.Context, patient genmodel.PatientProfiles) error {
	patients := table.PatientProfiles

	now := time.Now()
	patient.UpdatedAt = &now

	sql, args := patients.
		UPDATE(patients.FirstName, patients.LastName, patients.Age, patients.ProfilePicture, patients.UpdatedAt).
		MODEL(patient).
		WHERE(patients.UserID.EQ(postgres.UUID(patient.UserID))).
		Sql()
	if _, err := r.pgPool.Exec(ctx, sql, args...); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (r *user) UpdateDoctorProfile(ctx context.Context, doctor genmodel.DoctorProfiles) error {
	doctors := table.DoctorProfiles

	now := time.Now()
	doctor.UpdatedAt = &now

	sql, args := doctors.
		UPDATE(
			doctors.FirstName,
			doctors.LastName,
			doctors.Specialization,
			doctors.Hospital,
			doctors.ProfilePicture,
			doctors.UpdatedAt,
		).
		MODEL(doctor).
		WHERE(doctors.UserID.EQ(postgres.UUID(doctor.UserID))).
		Sql()
	if _, err := r.pgPool.Exec(ctx, sql, args...); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}
