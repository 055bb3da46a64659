package repository

import (
	"context"
	"database/sql"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/pkg/databases/mysql"
)

type submissionRepository struct {
	DB mysql.DBInterface
}

func NewSubmissionRepository(db mysql.DBInterface) SubmissionRepository {
	return &submissionRepository{DB: db}
}

const submissionColumns = `
	id, user_id, waste_type, estimated_weight, actual_weight, price_per_kg, fee_rate,
	estimated_value, estimated_fee, estimated_transfer, actual_value, platform_fee, actual_transfer,
	ewallet_type, ewallet_account, pickup_address, pickup_lat, pickup_lng, pickup_schedule,
	images, notes, status, created_at, updated_at
`

func (r *submissionRepository) FindByID(ctx context.Context, id string) (*entity.Submission, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var submission entity.Submission
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`
	if err = db.GetContext(ctx, &submission, query, id); err != nil {
		return nil, err
	}

	historyQuery := `
		SELECT id, submission_id, status, note, updated_by, created_at
		FROM submission_status_history
		WHERE submission_id = ?
		ORDER BY created_at ASC
	`
	if err = db.SelectContext(ctx, &submission.StatusHistory, historyQuery, id); err != nil {
		return nil, err
	}

	return &submission, nil
}

func (r *submissionRepository) FindFiltered(ctx context.Context, filter entity.SubmissionFilter) ([]entity.Submission, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE 1=1`
	args := []interface{}{}
	if filter.UserID != nil {
		query += ` AND user_id = ?`
		args = append(args, *filter.UserID)
	}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	var submissions []entity.Submission
	if err = db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) FindAll(ctx context.Context) ([]entity.Submission, error) {
	return r.FindFiltered(ctx, entity.SubmissionFilter{})
}

// Insert writes the submission and its first history entry in one
// transaction: a submission without a pending history row never exists.
func (r *submissionRepository) Insert(ctx context.Context, submission *entity.Submission) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO submissions (
			id, user_id, waste_type, estimated_weight, price_per_kg, fee_rate,
			estimated_value, estimated_fee, estimated_transfer,
			ewallet_type, ewallet_account, pickup_address, pickup_lat, pickup_lng, pickup_schedule,
			images, notes, status, created_at, updated_at
		) VALUES (
			:id, :user_id, :waste_type, :estimated_weight, :price_per_kg, :fee_rate,
			:estimated_value, :estimated_fee, :estimated_transfer,
			:ewallet_type, :ewallet_account, :pickup_address, :pickup_lat, :pickup_lng, :pickup_schedule,
			:images, :notes, :status, :created_at, :updated_at
		)
	`
	if _, err = tx.NamedExecContext(ctx, query, submission); err != nil {
		return err
	}

	for i := range submission.StatusHistory {
		if err = insertHistory(ctx, tx, &submission.StatusHistory[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateWithHistory persists a status transition atomically: field updates
// plus the appended history row commit together or not at all.
func (r *submissionRepository) UpdateWithHistory(ctx context.Context, submission *entity.Submission, history *entity.StatusHistory) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE submissions
		SET actual_weight = :actual_weight, actual_value = :actual_value,
			platform_fee = :platform_fee, actual_transfer = :actual_transfer,
			status = :status, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err = tx.NamedExecContext(ctx, query, submission); err != nil {
		return err
	}

	if err = insertHistory(ctx, tx, history); err != nil {
		return err
	}

	return tx.Commit()
}

type namedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

func insertHistory(ctx context.Context, tx namedExecer, history *entity.StatusHistory) error {
	query := `
		INSERT INTO submission_status_history (id, submission_id, status, note, updated_by, created_at)
		VALUES (:id, :submission_id, :status, :note, :updated_by, :created_at)
	`
	_, err := tx.NamedExecContext(ctx, query, history)
	return err
}
