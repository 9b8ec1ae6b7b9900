package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/cardbot/pkg/models"
)

// AddOutcome reports what AddToUser did with the submitted pair
type AddOutcome int

const (
	// OutcomeAdded means a new membership was created
	OutcomeAdded AddOutcome = iota
	// OutcomeRestored means a soft-deleted membership was reactivated
	OutcomeRestored
	// OutcomeAlreadyPresent means the word was already active for the user
	OutcomeAlreadyPresent
)

// AddResult carries the canonical word text after normalization plus the outcome
type AddResult struct {
	English string
	Russian string
	Outcome AddOutcome
}

// WordRepository handles database operations for words and user-word links
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// SeedDefaults inserts the default-word catalog unless default words already
// exist. The guard is count-based: any non-zero number of default rows makes
// this a no-op.
func (r *WordRepository) SeedDefaults(catalog []models.Word) error {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM words WHERE is_default = TRUE"); err != nil {
		return fmt.Errorf("failed to count default words: %v", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, word := range catalog {
		_, err := insertReturningID(tx,
			"INSERT INTO words (english, russian, is_default) VALUES (?, ?, TRUE)",
			normalize(word.English), normalize(word.Russian))
		if err != nil {
			return fmt.Errorf("failed to insert default word: %v", err)
		}
	}

	return tx.Commit()
}

// ListByUser returns the user's words. Deleted memberships are excluded
// unless includeDeleted is set; default words are excluded unless
// includeDefault is set, so the plain call returns only the user's own words.
func (r *WordRepository) ListByUser(userID int64, includeDeleted, includeDefault bool) ([]models.Word, error) {
	query := `SELECT w.id, w.english, w.russian, w.is_default
		FROM words w JOIN user_words uw ON uw.word_id = w.id
		WHERE uw.user_id = ?`
	if !includeDeleted {
		query += " AND uw.deleted = FALSE"
	}
	if !includeDefault {
		query += " AND w.is_default = FALSE"
	}

	var words []models.Word
	if err := DB.Select(&words, DB.Rebind(query), userID); err != nil {
		return nil, fmt.Errorf("failed to get user words: %v", err)
	}
	return words, nil
}

// DefaultsForUser returns the user's active default words
func (r *WordRepository) DefaultsForUser(userID int64) ([]models.Word, error) {
	query := DB.Rebind(`SELECT w.id, w.english, w.russian, w.is_default
		FROM words w JOIN user_words uw ON uw.word_id = w.id
		WHERE uw.user_id = ? AND uw.deleted = FALSE AND w.is_default = TRUE`)

	var words []models.Word
	if err := DB.Select(&words, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get default words: %v", err)
	}
	return words, nil
}

// AllActiveForUser returns every active word of the user, custom and default
func (r *WordRepository) AllActiveForUser(userID int64) ([]models.Word, error) {
	return r.ListByUser(userID, false, true)
}

// AllDefaults returns the global default catalog
func (r *WordRepository) AllDefaults() ([]models.Word, error) {
	var words []models.Word
	err := DB.Select(&words, "SELECT id, english, russian, is_default FROM words WHERE is_default = TRUE")
	if err != nil {
		return nil, fmt.Errorf("failed to get default catalog: %v", err)
	}
	return words, nil
}

// GetByID returns a word by ID, or nil if no such word exists
func (r *WordRepository) GetByID(wordID int64) (*models.Word, error) {
	var word models.Word
	query := DB.Rebind("SELECT id, english, russian, is_default FROM words WHERE id = ?")
	err := DB.Get(&word, query, wordID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %v", err)
	}
	return &word, nil
}

// AddToUser adds a translation pair to the user's pool. Both strings are
// normalized (lowercase, trimmed) and an existing word row with the same
// pair is reused rather than duplicated. The returned text is the canonical
// stored form, not the caller's casing. Word and membership writes share one
// transaction.
func (r *WordRepository) AddToUser(userID int64, english, russian string) (*AddResult, error) {
	english = normalize(english)
	russian = normalize(russian)

	tx, err := DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var word models.Word
	query := tx.Rebind("SELECT id, english, russian, is_default FROM words WHERE english = ? AND russian = ?")
	err = tx.Get(&word, query, english, russian)
	if err == sql.ErrNoRows {
		id, err := insertReturningID(tx,
			"INSERT INTO words (english, russian, is_default) VALUES (?, ?, FALSE)",
			english, russian)
		if err != nil {
			return nil, fmt.Errorf("failed to create word: %v", err)
		}
		word = models.Word{ID: id, English: english, Russian: russian}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up word: %v", err)
	}

	result := &AddResult{English: word.English, Russian: word.Russian}

	// The UNIQUE(user_id, word_id) constraint guarantees at most one row here
	var link models.UserWord
	query = tx.Rebind("SELECT id, user_id, word_id, deleted, added_at FROM user_words WHERE user_id = ? AND word_id = ?")
	err = tx.Get(&link, query, userID, word.ID)
	switch {
	case err == sql.ErrNoRows:
		_, err := insertReturningID(tx,
			"INSERT INTO user_words (user_id, word_id, deleted) VALUES (?, ?, FALSE)",
			userID, word.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create membership: %v", err)
		}
		result.Outcome = OutcomeAdded
	case err != nil:
		return nil, fmt.Errorf("failed to look up membership: %v", err)
	case link.Deleted:
		// Восстанавливаем ранее удаленное слово, строка переиспользуется
		if _, err := tx.Exec(tx.Rebind("UPDATE user_words SET deleted = FALSE WHERE id = ?"), link.ID); err != nil {
			return nil, fmt.Errorf("failed to restore membership: %v", err)
		}
		result.Outcome = OutcomeRestored
	default:
		result.Outcome = OutcomeAlreadyPresent
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return result, nil
}

// SoftDelete marks the user's membership for a word as deleted. Default
// words are never deletable, regardless of membership state, and rows are
// never physically removed. Policy violations come back as (false, reason),
// the error is reserved for persistence failures.
func (r *WordRepository) SoftDelete(userID, wordID int64) (bool, string, error) {
	word, err := r.GetByID(wordID)
	if err != nil {
		return false, "", err
	}
	if word == nil {
		return false, "Слово не найдено", nil
	}
	if word.IsDefault {
		return false, "Нельзя удалять слова по умолчанию", nil
	}

	var linkID int64
	query := DB.Rebind("SELECT id FROM user_words WHERE user_id = ? AND word_id = ? AND deleted = FALSE")
	err = DB.Get(&linkID, query, userID, wordID)
	if err == sql.ErrNoRows {
		return false, "Слово не найдено у пользователя", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to look up membership: %v", err)
	}

	if _, err := DB.Exec(DB.Rebind("UPDATE user_words SET deleted = TRUE WHERE id = ?"), linkID); err != nil {
		return false, "", fmt.Errorf("failed to delete word: %v", err)
	}

	return true, "Слово удалено", nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
