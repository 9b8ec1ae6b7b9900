// Package trainer is the quiz session controller: it turns the vocabulary
// store into quiz cards and evaluates answers. It keeps no state of its own;
// the pending card lives in the injected session store between turns.
package trainer

import (
	"log"
	"math/rand"
	"time"

	"github.com/example/cardbot/internal/database"
	"github.com/example/cardbot/internal/quiz"
	"github.com/example/cardbot/internal/session"
	"github.com/example/cardbot/pkg/models"
)

// Trainer drives quiz rounds over the vocabulary store
type Trainer struct {
	users    *database.UserRepository
	words    *database.WordRepository
	sessions session.Store
	rnd      *rand.Rand
}

// New creates a trainer with time-seeded randomness
func New(sessions session.Store) *Trainer {
	return NewWithRand(sessions, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a trainer with the given random source. Tests use a
// fixed seed here.
func NewWithRand(sessions session.Store, rnd *rand.Rand) *Trainer {
	return &Trainer{
		users:    database.NewUserRepository(),
		words:    database.NewWordRepository(),
		sessions: sessions,
		rnd:      rnd,
	}
}

// Provision returns the store user for a Telegram identity, creating and
// seeding it on first contact
func (t *Trainer) Provision(telegramID int64, username, firstName, lastName string) (*models.User, error) {
	return t.users.GetOrCreate(telegramID, username, firstName, lastName)
}

// StartQuiz picks a fresh card for the user and records it as the pending
// quiz for the conversation. On quiz.ErrInsufficientVocabulary nothing is
// stored and the error propagates to the caller.
func (t *Trainer) StartQuiz(userID int64, key session.Key) (*quiz.Set, error) {
	active, err := t.words.AllActiveForUser(userID)
	if err != nil {
		return nil, err
	}

	defaults, err := t.words.AllDefaults()
	if err != nil {
		return nil, err
	}
	if len(defaults) == 0 {
		log.Printf("Warning: default catalog is empty, falling back to built-in words")
	}

	set, err := quiz.Pick(active, defaults, quiz.OptionCount, t.rnd)
	if err != nil {
		return nil, err
	}

	target := set.Target
	t.sessions.Set(key, session.Data{
		State:   session.AwaitingAnswer,
		Target:  &target,
		Options: set.Options,
		StoreID: userID,
	})

	return set, nil
}

// Answer is the evaluation of one submitted option
type Answer struct {
	Correct bool
	Target  models.Word
	Options []models.Word
}

// SubmitAnswer compares the submitted text against the pending target,
// exact and case-sensitive. The second return is false when no quiz is
// pending for the conversation. A correct answer clears the pending card;
// a wrong one keeps it, so the user retries the same quiz.
func (t *Trainer) SubmitAnswer(key session.Key, answer string) (*Answer, bool) {
	data, ok := t.sessions.Get(key)
	if !ok || data.State != session.AwaitingAnswer || data.Target == nil {
		return nil, false
	}

	result := &Answer{
		Correct: answer == data.Target.English,
		Target:  *data.Target,
		Options: data.Options,
	}
	if result.Correct {
		t.sessions.Clear(key)
	}

	return result, true
}
