// Package scheduler sends daily practice reminders. There is no per-word
// scheduling here, just one nudge per user per day.
package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/cardbot/internal/database"
)

// DefaultReminderHour is the UTC hour reminders go out when
// REMINDER_HOUR is not set
const DefaultReminderHour = 12

// Notifier delivers reminders to users
type Notifier interface {
	SendPracticeReminder(telegramID int64, wordCount int) error
}

// Scheduler manages the daily reminder job
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	users     *database.UserRepository
	words     *database.WordRepository
}

// New creates a scheduler delivering through the given notifier
func New(notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		users:     database.NewUserRepository(),
		words:     database.NewWordRepository(),
	}
}

// Start schedules the daily reminder and runs it in the background
func (s *Scheduler) Start() error {
	hour := DefaultReminderHour
	if hourStr := os.Getenv("REMINDER_HOUR"); hourStr != "" {
		if h, err := strconv.Atoi(hourStr); err == nil && h >= 0 && h <= 23 {
			hour = h
		} else {
			log.Printf("Warning: invalid REMINDER_HOUR %q, using %d", hourStr, hour)
		}
	}

	_, err := s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(s.sendReminders)
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %v", err)
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop terminates the reminder job
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// sendReminders pings every known user with their active word count.
// Failures are logged per user and never abort the sweep.
func (s *Scheduler) sendReminders() {
	users, err := s.users.All()
	if err != nil {
		log.Printf("Error getting users for reminders: %v", err)
		return
	}

	for _, user := range users {
		words, err := s.words.AllActiveForUser(user.ID)
		if err != nil {
			log.Printf("Error getting words for user %d: %v", user.ID, err)
			continue
		}
		if len(words) == 0 {
			continue
		}

		if err := s.notifier.SendPracticeReminder(user.TelegramID, len(words)); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}
