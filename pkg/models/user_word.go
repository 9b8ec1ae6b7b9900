package models

import "time"

// UserWord links a user to a word. At most one row exists per
// (user_id, word_id) pair; removal is always the soft kind.
type UserWord struct {
	ID      int64     `json:"id" db:"id"`
	UserID  int64     `json:"user_id" db:"user_id"`
	WordID  int64     `json:"word_id" db:"word_id"`
	Deleted bool      `json:"deleted" db:"deleted"`
	AddedAt time.Time `json:"added_at" db:"added_at"`
}
