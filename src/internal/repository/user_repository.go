package repository

import (
	"context"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/pkg/databases/mysql"
)

type userRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `
		SELECT user_id, full_name, email, password, phone, address, role, is_active, created_at, updated_at
		FROM users
		WHERE user_id = ?
	`
	if err = db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}

	if user.Ewallets, err = r.findEwallets(ctx, id); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `
		SELECT user_id, full_name, email, password, phone, address, role, is_active, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	if err = db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}

	if user.Ewallets, err = r.findEwallets(ctx, user.UserID); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindAllActive(ctx context.Context) ([]entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var users []entity.User
	query := `
		SELECT user_id, full_name, email, password, phone, address, role, is_active, created_at, updated_at
		FROM users
		WHERE is_active = 1
		ORDER BY created_at ASC
	`
	if err = db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (user_id, full_name, email, password, phone, address, role, is_active, created_at)
		VALUES (:user_id, :full_name, :email, :password, :phone, :address, :role, :is_active, :created_at)
	`
	_, err = db.NamedExecContext(ctx, query, user)
	return err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET full_name = :full_name, phone = :phone, address = :address, updated_at = NOW()
		WHERE user_id = :user_id
	`
	_, err = db.NamedExecContext(ctx, query, user)
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID, hashed string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE users SET password = ?, updated_at = NOW() WHERE user_id = ?`, hashed, userID)
	return err
}

func (r *userRepository) UpsertEwallet(ctx context.Context, wallet *entity.EWallet) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_ewallets (id, user_id, provider, account, created_at, updated_at)
		VALUES (:id, :user_id, :provider, :account, :created_at, :updated_at)
		ON DUPLICATE KEY UPDATE account = VALUES(account), updated_at = VALUES(updated_at)
	`
	_, err = db.NamedExecContext(ctx, query, wallet)
	return err
}

// SetActive flips the flag and appends the admin note in one transaction so
// the audit trail never misses an action.
func (r *userRepository) SetActive(ctx context.Context, userID string, active bool, note *entity.AdminNote) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `UPDATE users SET is_active = ?, updated_at = NOW() WHERE user_id = ?`, active, userID); err != nil {
		return err
	}

	noteQuery := `
		INSERT INTO user_admin_notes (id, user_id, action, reason, admin_id, created_at)
		VALUES (:id, :user_id, :action, :reason, :admin_id, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, noteQuery, note); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) findEwallets(ctx context.Context, userID string) ([]entity.EWallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallets []entity.EWallet
	query := `
		SELECT id, user_id, provider, account, created_at, updated_at
		FROM user_ewallets
		WHERE user_id = ?
	`
	if err = db.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, err
	}
	return wallets, nil
}
