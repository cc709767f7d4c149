package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/SidorenkoTatiana/foodgram-st/internal/models"
)

const userColumns = `u.id, u.email, u.username, u.first_name, u.last_name,
	u.password_hash, u.avatar, u.created_at`

// UserRepository reads and writes users.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// Create inserts the user and fills in the generated id and timestamp.
// Duplicate email or username yields ErrUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (email, username, first_name, last_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	args := []any{user.Email, user.Username, user.FirstName, user.LastName, user.PasswordHash}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&user.ID, &user.CreatedAt)
	logQuery(query, []any{user.Email, user.Username}, user.ID, err)

	return translateError(err)
}

// GetByEmail returns nil when no user has the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE LOWER(u.email) = LOWER($1)`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the viewer's subscription flag, or nil.
func (r *UserRepository) GetByID(ctx context.Context, viewerID, id int64) (*models.UserRow, error) {
	query := `SELECT ` + userColumns + `, ` +
		membershipClause(models.RelationSubscription, "$1", "u.id") + ` AS is_subscribed
		FROM users u
		WHERE u.id = $2`
	args := []any{viewerID, id}

	var user models.UserRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users ordered by username.
func (r *UserRepository) List(ctx context.Context, viewerID int64, limit, offset int) ([]models.UserRow, error) {
	query := `SELECT ` + userColumns + `, ` +
		membershipClause(models.RelationSubscription, "$1", "u.id") + ` AS is_subscribed
		FROM users u
		ORDER BY u.username
		LIMIT $2 OFFSET $3`
	args := []any{viewerID, nullableLimit(limit), offset}

	users := []models.UserRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)
	logQuery(query, args, len(users), err)

	return users, err
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query)
	logQuery(query, nil, count, err)

	return count, err
}

// ListSubscriptions returns the authors userID is subscribed to.
func (r *UserRepository) ListSubscriptions(ctx context.Context, userID int64, limit, offset int) ([]models.UserRow, error) {
	query := `SELECT ` + userColumns + `, TRUE AS is_subscribed
		FROM subscribers s
		JOIN users u ON u.id = s.author_id
		WHERE s.user_id = $1
		ORDER BY s.id
		LIMIT $2 OFFSET $3`
	args := []any{userID, nullableLimit(limit), offset}

	users := []models.UserRow{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)
	logQuery(query, args, len(users), err)

	return users, err
}

func (r *UserRepository) CountSubscriptions(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM subscribers WHERE user_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, userID)
	logQuery(query, []any{userID}, count, err)

	return count, err
}

// UpdateAvatar sets or, with nil, clears the stored avatar path.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id int64, avatar *string) error {
	const query = `UPDATE users SET avatar = $1 WHERE id = $2`
	args := []any{avatar, id}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, passwordHash, id)
	logQuery(query, []any{id}, nil, err)

	return err
}
