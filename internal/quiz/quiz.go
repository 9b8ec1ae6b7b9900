// Package quiz builds multiple-choice quiz sets from a user's word pool.
// Selection is a pure function over the pools it is handed; randomness is
// injected so tests can be deterministic.
package quiz

import (
	"errors"
	"math/rand"

	"github.com/example/cardbot/pkg/models"
)

// OptionCount is the standard number of answer options per card
const OptionCount = 4

// ErrInsufficientVocabulary means even the default catalog and the built-in
// emergency set together cannot fill the requested option count. That is an
// operator problem (empty or tiny catalog), not a user one.
var ErrInsufficientVocabulary = errors.New("not enough distinct words to build a quiz")

// Set is one quiz round: the target word and the shuffled answer options.
// The target appears among the options exactly once.
type Set struct {
	Target  models.Word
	Options []models.Word
}

// emergencyWords keeps the trainer usable when the default catalog was
// never seeded. Callers hitting this path should log a warning.
func emergencyWords() []models.Word {
	return []models.Word{
		{English: "hello", Russian: "привет"},
		{English: "goodbye", Russian: "до свидания"},
		{English: "thank you", Russian: "спасибо"},
		{English: "please", Russian: "пожалуйста"},
	}
}

// Pick selects a target and count-1 distractors. The candidate pool is the
// user's active words; when those are fewer than count the pool switches
// entirely to the default catalog, and to the emergency set when the catalog
// is empty. A shortage of distractors is topped up with distinct default
// (then emergency) words not already in the pool. Options never contain
// duplicate pairs.
func Pick(userWords, defaults []models.Word, count int, r *rand.Rand) (*Set, error) {
	pool := dedupe(userWords)
	if len(pool) < count {
		// Нехватка своих слов - работаем целиком по каталогу
		pool = dedupe(defaults)
		if len(pool) == 0 {
			pool = emergencyWords()
		}
	}

	target := pool[r.Intn(len(pool))]

	seen := make(map[string]bool, len(pool))
	for _, w := range pool {
		seen[pairKey(w)] = true
	}

	rest := make([]models.Word, 0, len(pool)-1)
	for _, w := range pool {
		if pairKey(w) != pairKey(target) {
			rest = append(rest, w)
		}
	}
	r.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	distractors := rest
	if len(distractors) >= count-1 {
		distractors = distractors[:count-1]
	} else {
		var extras []models.Word
		for _, w := range append(dedupe(defaults), emergencyWords()...) {
			if !seen[pairKey(w)] {
				seen[pairKey(w)] = true
				extras = append(extras, w)
			}
		}
		r.Shuffle(len(extras), func(i, j int) {
			extras[i], extras[j] = extras[j], extras[i]
		})

		need := count - 1 - len(distractors)
		if len(extras) < need {
			return nil, ErrInsufficientVocabulary
		}
		distractors = append(distractors, extras[:need]...)
	}

	options := append([]models.Word{target}, distractors...)
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Set{Target: target, Options: options}, nil
}

// pairKey identifies a word by its translation pair rather than its row ID,
// so unsaved emergency words compare cleanly against stored ones.
func pairKey(w models.Word) string {
	return w.English + "\x00" + w.Russian
}

func dedupe(words []models.Word) []models.Word {
	seen := make(map[string]bool, len(words))
	out := make([]models.Word, 0, len(words))
	for _, w := range words {
		if !seen[pairKey(w)] {
			seen[pairKey(w)] = true
			out = append(out, w)
		}
	}
	return out
}
