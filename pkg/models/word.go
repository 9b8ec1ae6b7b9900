package models

// Word represents a translation pair shared between users.
// Words are never deleted; per-user visibility lives in UserWord.
type Word struct {
	ID        int64  `json:"id" db:"id"`
	English   string `json:"english" db:"english"`
	Russian   string `json:"russian" db:"russian"`
	IsDefault bool   `json:"is_default" db:"is_default"` // granted to every user, non-deletable
}
