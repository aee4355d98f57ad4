package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmolina/parroquia-api/internal/model"
	"github.com/dmolina/parroquia-api/internal/utils"
)

// UserRepo manages administrator accounts.
type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = "id, email, password_hash, nombre, role, is_active, last_login_at, created_at, updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Role,
		&u.IsActive, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, translate(err)
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return u, nil
}

// GetByEmail fetches an account by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email = ? LIMIT 1", email)
	return scanUser(row)
}

// GetByID fetches an account by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id = ? LIMIT 1", id)
	return scanUser(row)
}

// Create inserts an administrator account and returns its id.  The password
// is hashed here so plaintext never reaches the SQL layer.
func (r *UserRepo) Create(ctx context.Context, email, password, nombre, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, nombre, role) VALUES (?,?,?,?)",
		email, hash, nombre, role)
	if err != nil {
		return 0, translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// TouchLastLogin stamps the account's last successful login.
func (r *UserRepo) TouchLastLogin(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET last_login_at = UTC_TIMESTAMP() WHERE id = ?", id)
	return translate(err)
}
