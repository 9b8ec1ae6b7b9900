package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/cardbot/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// GetByTelegramID returns a user by Telegram ID, or nil if no such user exists
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	query := DB.Rebind("SELECT id, telegram_id, username, first_name, last_name, created_at FROM users WHERE telegram_id = ?")
	err := DB.Get(&user, query, telegramID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by telegram ID: %v", err)
	}
	return &user, nil
}

// GetOrCreate returns the user for the given Telegram ID, creating it on
// first contact. A new user receives a membership for every current default
// word; user row and memberships commit in one transaction. Calling it again
// with the same Telegram ID has no side effects. Profile metadata on an
// existing user is left as is.
func (r *UserRepository) GetOrCreate(telegramID int64, username, firstName, lastName string) (*models.User, error) {
	user, err := r.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	userID, err := insertReturningID(tx,
		"INSERT INTO users (telegram_id, username, first_name, last_name) VALUES (?, ?, ?, ?)",
		telegramID, username, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	// Новому пользователю выдаем все слова по умолчанию
	var defaultIDs []int64
	if err := tx.Select(&defaultIDs, "SELECT id FROM words WHERE is_default = TRUE"); err != nil {
		return nil, fmt.Errorf("failed to get default words: %v", err)
	}

	for _, wordID := range defaultIDs {
		_, err := insertReturningID(tx,
			"INSERT INTO user_words (user_id, word_id, deleted) VALUES (?, ?, FALSE)",
			userID, wordID)
		if err != nil {
			return nil, fmt.Errorf("failed to grant default word: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return r.GetByTelegramID(telegramID)
}

// All returns all users ordered by creation time
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	err := DB.Select(&users, "SELECT id, telegram_id, username, first_name, last_name, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	return users, nil
}

// insertReturningID runs an INSERT written with ? placeholders and returns
// the generated row ID. Postgres needs RETURNING, SQLite uses LastInsertId.
func insertReturningID(tx *sqlx.Tx, query string, args ...interface{}) (int64, error) {
	if DB.DriverName() == "postgres" {
		var id int64
		err := tx.QueryRow(tx.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
