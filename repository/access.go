package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/healthsecure/medichain-service/.gen/medichain/public/enum"
	genmodel "github.com/healthsecure/medichain-service/.gen/medichain/public/model"
	"github.com/healthsecure/medichain-service/.gen/medichain/public/table"
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/logger"
)

type Access interface {
	ListAccessRequests(ctx context.Context, filter model.AccessFilter) ([]model.AccessRequest, error)
	GetAccessRequestRow(ctx context.Context, accessID int64) (genmodel.AccessRequests, error)
	CreateAccessRequest(ctx context.Context, req genmodel.AccessRequests) (int64, error)
	UpdateAccessStatus(ctx context.Context, accessID int64, status genmodel.AccessStatus, revokedAt *time.Time) error
	HasApprovedAccess(ctx context.Context, patientUserID, doctorUserID uuid.UUID) (bool, error)
}

type access struct {
	pgPool *pgxpool.Pool
}

func NewAccessRepository(pgPool *pgxpool.Pool) Access {
	return &access{pgPool: pgPool}
}

func accessCondition(filter model.AccessFilter) postgres.BoolExpression {
	requests := table.AccessRequests

	condition := postgres.Bool(true)
	if filter.AccessID != 0 {
		condition = condition.AND(requests.AccessID.EQ(postgres.Int64(filter.AccessID)))
	}
	if filter.PatientUserID != uuid.Nil {
		condition = condition.AND(requests.PatientUserID.EQ(postgres.UUID(filter.PatientUserID)))
	}
	if filter.DoctorUserID != uuid.Nil {
		condition = condition.AND(requests.DoctorUserID.EQ(postgres.UUID(filter.DoctorUserID)))
	}
	if filter.Status != "" {
		condition = condition.AND(requests.Status.EQ(postgres.NewEnumValue(filter.Status)))
	}
	return condition
}

func (r *access) ListAccessRequests(ctx context.Context, filter model.AccessFilter) (requests []model.AccessRequest, err error) {
	accessRequests := table.AccessRequests
	patients := table.PatientProfiles
	doctors := table.DoctorProfiles

	query, args := accessRequests.
		INNER_JOIN(patients, patients.UserID.EQ(accessRequests.PatientUserID)).
		INNER_JOIN(doctors, doctors.UserID.EQ(accessRequests.DoctorUserID)).
		SELECT(
			accessRequests.AccessID,
			accessRequests.AccessType,
			accessRequests.Status,
			accessRequests.GrantedAt,
			accessRequests.ExpiresAt,
			accessRequests.RevokedAt,
			patients.FirstName,
			patients.LastName,
			patients.HealthID,
			doctors.FirstName,
			doctors.LastName,
			doctors.DoctorID,
			doctors.Hospital,
		).
		WHERE(accessCondition(filter)).
		ORDER_BY(accessRequests.GrantedAt.DESC()).
		Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var (
			req                               model.AccessRequest
			accessType                        genmodel.AccessType
			status                            genmodel.AccessStatus
			patientFirstName, patientLastName string
			doctorFirstName, doctorLastName   string
		)
		err = rows.Scan(
			&req.ID,
			&accessType,
			&status,
			&req.GrantedAt,
			&req.ExpiresAt,
			&req.RevokedAt,
			&patientFirstName,
			&patientLastName,
			&req.PatientHealthID,
			&doctorFirstName,
			&doctorLastName,
			&req.DoctorID,
			&req.Hospital,
		)
		if err != nil {
			logger.Context(ctx).Error(err)
			return
		}

		req.AccessType = accessType.String()
		req.AccessTypeName = model.AccessTypeDisplay(req.AccessType)
		req.Status = status.String()
		req.PatientName = patientFirstName + " " + patientLastName
		req.DoctorName = "Dr. " + doctorFirstName + " " + doctorLastName
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *access) GetAccessRequestRow(ctx context.Context, accessID int64) (req genmodel.AccessRequests, err error) {
	requests := table.AccessRequests

	query, args := requests.
		SELECT(
			requests.AccessID,
			requests.PatientUserID,
			requests.DoctorUserID,
			requests.AccessType,
			requests.Status,
			requests.GrantedAt,
			requests.ExpiresAt,
			requests.RevokedAt,
		).
		WHERE(requests.AccessID.EQ(postgres.Int64(accessID))).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(
		&req.AccessID,
		&req.PatientUserID,
		&req.DoctorUserID,
		&req.AccessType,
		&req.Status,
		&req.GrantedAt,
		&req.ExpiresAt,
		&req.RevokedAt,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Context(ctx).Error(err)
		}
		return
	}

	return req, nil
}

func (r *access) CreateAccessRequest(ctx context.Context, req genmodel.AccessRequests) (accessID int64, err error) {
	requests := table.AccessRequests

	sql, args := requests.
		INSERT(
			requests.PatientUserID,
			requests.DoctorUserID,
			requests.AccessType,
			requests.Status,
			requests.GrantedAt,
			requests.ExpiresAt,
		).
		MODEL(req).
		RETURNING(requests.AccessID).
		Sql()
	err = r.pgPool.QueryRow(ctx, sql, args...).Scan(&accessID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	return accessID, nil
}

func (r *access) UpdateAccessStatus(ctx context.Context, accessID int64, status genmodel.AccessStatus, revokedAt *time.Time) error {
	requests := table.AccessRequests

	var revokedAtExpr postgres.Expression = postgres.NULL
	if revokedAt != nil {
		revokedAtExpr = postgres.TimestampzT(*revokedAt)
	}

	sql, args := requests.
		UPDATE(requests.Status, requests.RevokedAt).
		SET(postgres.NewEnumValue(status.String()), revokedAtExpr).
		WHERE(requests.AccessID.EQ(postgres.Int64(accessID))).
		Sql()
	if _, err := r.pgPool.Exec(ctx, sql, args...); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

// HasApprovedAccess reports whether the doctor currently holds an APPROVED,
// unexpired grant for the patient.
func (r *access) HasApprovedAccess(ctx context.Context, patientUserID, doctorUserID uuid.UUID) (bool, error) {
	requests := table.AccessRequests

	condition := requests.PatientUserID.EQ(postgres.UUID(patientUserID)).
		AND(requests.DoctorUserID.EQ(postgres.UUID(doctorUserID))).
		AND(requests.Status.EQ(enum.AccessStatus.Approved)).
		AND(requests.ExpiresAt.IS_NULL().OR(requests.ExpiresAt.GT(postgres.TimestampzT(time.Now()))))

	query, args := requests.
		SELECT(postgres.COUNT(requests.AccessID).AS("total")).
		WHERE(condition).
		Sql()

	var total int64
	if err := r.pgPool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		logger.Context(ctx).Error(err)
		return false, err
	}

	return total > 0, nil
}
