package repository

import (
	"context"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/pkg/databases/mysql"
)

type wasteBankRepository struct {
	DB mysql.DBInterface
}

func NewWasteBankRepository(db mysql.DBInterface) WasteBankRepository {
	return &wasteBankRepository{DB: db}
}

const wasteBankColumns = `
	id, name, description, address, city, province, latitude, longitude,
	operating_hours, accepted_types, is_active, is_partner, rating, total_reviews,
	created_at, updated_at
`

func (r *wasteBankRepository) FindByID(ctx context.Context, id string) (*entity.WasteBank, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var bank entity.WasteBank
	query := `SELECT ` + wasteBankColumns + ` FROM waste_banks WHERE id = ?`
	if err = db.GetContext(ctx, &bank, query, id); err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *wasteBankRepository) FindAllActive(ctx context.Context) ([]entity.WasteBank, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var banks []entity.WasteBank
	query := `SELECT ` + wasteBankColumns + ` FROM waste_banks WHERE is_active = 1 ORDER BY created_at ASC`
	if err = db.SelectContext(ctx, &banks, query); err != nil {
		return nil, err
	}
	return banks, nil
}

func (r *wasteBankRepository) Insert(ctx context.Context, bank *entity.WasteBank) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO waste_banks (
			id, name, description, address, city, province, latitude, longitude,
			operating_hours, accepted_types, is_active, is_partner, rating, total_reviews,
			created_at, updated_at
		) VALUES (
			:id, :name, :description, :address, :city, :province, :latitude, :longitude,
			:operating_hours, :accepted_types, :is_active, :is_partner, :rating, :total_reviews,
			:created_at, :updated_at
		)
	`
	_, err = db.NamedExecContext(ctx, query, bank)
	return err
}

func (r *wasteBankRepository) Update(ctx context.Context, bank *entity.WasteBank) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE waste_banks
		SET name = :name, description = :description, address = :address, city = :city,
			province = :province, operating_hours = :operating_hours, accepted_types = :accepted_types,
			is_active = :is_active, is_partner = :is_partner, updated_at = :updated_at
		WHERE id = :id
	`
	_, err = db.NamedExecContext(ctx, query, bank)
	return err
}

func (r *wasteBankRepository) FindReviews(ctx context.Context, bankID string) ([]entity.Review, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var reviews []entity.Review
	query := `
		SELECT id, waste_bank_id, user_id, user_name, rating, comment, created_at, updated_at
		FROM waste_bank_reviews
		WHERE waste_bank_id = ?
		ORDER BY created_at ASC
	`
	if err = db.SelectContext(ctx, &reviews, query, bankID); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SaveReview upserts the review and refreshes the bank's derived rating
// fields in one transaction.
func (r *wasteBankRepository) SaveReview(ctx context.Context, review *entity.Review, isNew bool, rating float64, totalReviews int) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if isNew {
		query := `
			INSERT INTO waste_bank_reviews (id, waste_bank_id, user_id, user_name, rating, comment, created_at, updated_at)
			VALUES (:id, :waste_bank_id, :user_id, :user_name, :rating, :comment, :created_at, :updated_at)
		`
		if _, err = tx.NamedExecContext(ctx, query, review); err != nil {
			return err
		}
	} else {
		query := `
			UPDATE waste_bank_reviews
			SET rating = :rating, comment = :comment, updated_at = :updated_at
			WHERE id = :id
		`
		if _, err = tx.NamedExecContext(ctx, query, review); err != nil {
			return err
		}
	}

	ratingQuery := `UPDATE waste_banks SET rating = ?, total_reviews = ?, updated_at = NOW() WHERE id = ?`
	if _, err = tx.ExecContext(ctx, ratingQuery, rating, totalReviews, review.WasteBankID); err != nil {
		return err
	}

	return tx.Commit()
}
