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
	"github.com/healthsecure/medichain-service/model"
	"github.com/healthsecure/medichain-service/pkg/logger"
)

type Record interface {
	ListRecords(ctx context.Context, filter model.RecordFilter) ([]model.MedicalRecord, error)
	GetRecordRow(ctx context.Context, recordID int64) (genmodel.MedicalRecords, error)
	CreateRecord(ctx context.Context, record genmodel.MedicalRecords) (int64, error)
	UpdateRecordVisibility(ctx context.Context, recordID int64, visible bool) error
	CountRecords(ctx context.Context, filter model.RecordFilter) (int64, error)
	CountDistinctDoctors(ctx context.Context, patientUserID uuid.UUID) (int64, error)
	CountDistinctPatients(ctx context.Context, doctorUserID uuid.UUID) (int64, error)
	LastRecordTime(ctx context.Context, filter model.RecordFilter) (*time.Time, error)
}

type record struct {
	pgPool *pgxpool.Pool
}

func NewRecordRepository(pgPool *pgxpool.Pool) Record {
	return &record{pgPool: pgPool}
}

func recordCondition(filter model.RecordFilter) postgres.BoolExpression {
	records := table.MedicalRecords

	condition := postgres.Bool(true)
	if filter.RecordID != 0 {
		condition = condition.AND(records.RecordID.EQ(postgres.Int64(filter.RecordID)))
	}
	if filter.PatientUserID != uuid.Nil {
		condition = condition.AND(records.PatientUserID.EQ(postgres.UUID(filter.PatientUserID)))
	}
	if filter.DoctorUserID != uuid.Nil {
		condition = condition.AND(records.DoctorUserID.EQ(postgres.UUID(filter.DoctorUserID)))
	}
	if filter.VisibleOnly {
		condition = condition.AND(records.IsVisible.IS_TRUE())
	}
	return condition
}

func (r *record) ListRecords(ctx context.Context, filter model.RecordFilter) (records []model.MedicalRecord, err error) {
	medicalRecords := table.MedicalRecords
	patients := table.PatientProfiles
	doctors := table.DoctorProfiles

	query, args := medicalRecords.
		INNER_JOIN(patients, patients.UserID.EQ(medicalRecords.PatientUserID)).
		INNER_JOIN(doctors, doctors.UserID.EQ(medicalRecords.DoctorUserID)).
		SELECT(
			medicalRecords.RecordID,
			medicalRecords.RecordType,
			medicalRecords.Diagnosis,
			medicalRecords.Notes,
			medicalRecords.Document,
			medicalRecords.IsVisible,
			medicalRecords.CreatedAt,
			doctors.FirstName,
			doctors.LastName,
			doctors.Hospital,
			patients.FirstName,
			patients.LastName,
			patients.HealthID,
		).
		WHERE(recordCondition(filter)).
		ORDER_BY(medicalRecords.CreatedAt.DESC()).
		Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec                                    model.MedicalRecord
			recordType                             genmodel.RecordType
			doctorFirstName, doctorLastName        string
			patientFirstName, patientLastName      string
		)
		err = rows.Scan(
			&rec.ID,
			&recordType,
			&rec.Diagnosis,
			&rec.Notes,
			&rec.Document,
			&rec.IsVisible,
			&rec.CreatedAt,
			&doctorFirstName,
			&doctorLastName,
			&rec.Hospital,
			&patientFirstName,
			&patientLastName,
			&rec.PatientHealthID,
		)
		if err != nil {
			logger.Context(ctx).Error(err)
			return
		}

		rec.RecordType = recordType.String()
		rec.RecordTypeDisplay = model.RecordTypeDisplay(rec.RecordType)
		rec.DoctorName = "Dr. " + doctorFirstName + " " + doctorLastName
		rec.PatientName = patientFirstName + " " + patientLastName
		records = append(records, rec)
	}

	return records, nil
}

func (r *record) GetRecordRow(ctx context.Context, recordID int64) (rec genmodel.MedicalRecords, err error) {
	records := table.MedicalRecords

	query, args := records.
		SELECT(
			records.RecordID,
			records.PatientUserID,
			records.DoctorUserID,
			records.RecordType,
			records.Diagnosis,
			records.Notes,
			records.Document,
			records.IsVisible,
			records.CreatedAt,
			records.UpdatedAt,
		).
		WHERE(records.RecordID.EQ(postgres.Int64(recordID))).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(
		&rec.RecordID,
		&rec.PatientUserID,
		&rec.DoctorUserID,
		&rec.RecordType,
		&rec.Diagnosis,
		&rec.Notes,
		&rec.Document,
		&rec.IsVisible,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			logger.Context(ctx).Error(err)
		}
		return
	}

	return rec, nil
}

func (r *record) CreateRecord(ctx context.Context, rec genmodel.MedicalRecords) (recordID int64, err error) {
	records := table.MedicalRecords

	sql, args := records.
		INSERT(
			records.PatientUserID,
			records.DoctorUserID,
			records.RecordType,
			records.Diagnosis,
			records.Notes,
			records.Document,
			records.IsVisible,
			records.CreatedAt,
		).
		MODEL(rec).
		RETURNING(records.RecordID).
		Sql()
	err = r.pgPool.QueryRow(ctx, sql, args...).Scan(&recordID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	return recordID, nil
}

func (r *record) UpdateRecordVisibility(ctx context.Context, recordID int64, visible bool) error {
	records := table.MedicalRecords

	sql, args := records.
		UPDATE(records.IsVisible, records.UpdatedAt).
		SET(postgres.Bool(visible), postgres.TimestampzT(time.Now())).
		WHERE(records.RecordID.EQ(postgres.Int64(recordID))).
		Sql()
	if _, err := r.pgPool.Exec(ctx, sql, args...); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (r *record) CountRecords(ctx context.Context, filter model.RecordFilter) (total int64, err error) {
	records := table.MedicalRecords

	query, args := records.
		SELECT(postgres.COUNT(records.RecordID).AS("total")).
		WHERE(recordCondition(filter)).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	return total, nil
}

func (r *record) CountDistinctDoctors(ctx context.Context, patientUserID uuid.UUID) (total int64, err error) {
	records := table.MedicalRecords

	query, args := records.
		SELECT(postgres.COUNT(postgres.DISTINCT(records.DoctorUserID)).AS("total")).
		WHERE(records.PatientUserID.EQ(postgres.UUID(patientUserID))).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	return total, nil
}

func (r *record) CountDistinctPatients(ctx context.Context, doctorUserID uuid.UUID) (total int64, err error) {
	records := table.MedicalRecords

	query, args := records.
		SELECT(postgres.COUNT(postgres.DISTINCT(records.PatientUserID)).AS("total")).
		WHERE(records.DoctorUserID.EQ(postgres.UUID(doctorUserID))).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		logger.Context(ctx).Error(err)
		return
	}

	return total, nil
}

func (r *record) LastRecordTime(ctx context.Context, filter model.RecordFilter) (*time.Time, error) {
	records := table.MedicalRecords

	query, args := records.
		SELECT(records.CreatedAt).
		WHERE(recordCondition(filter)).
		ORDER_BY(records.CreatedAt.DESC()).
		LIMIT(1).
		Sql()

	var last time.Time
	err := r.pgPool.QueryRow(ctx, query, args...).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Context(ctx).Error(err)
		return nil, err
	}

	return &last, nil
}
