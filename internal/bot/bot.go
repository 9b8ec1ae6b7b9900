package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/cardbot/internal/database"
	"github.com/example/cardbot/internal/session"
	"github.com/example/cardbot/internal/trainer"
)

// Bot is the Telegram front of the trainer
type Bot struct {
	api      *tgbotapi.BotAPI
	trainer  *trainer.Trainer
	words    *database.WordRepository
	sessions session.Store
}

// New creates the bot for the given token. The session store is injected so
// conversational state is not tied to the transport.
func New(token string, sessions session.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %v", err)
	}

	return &Bot{
		api:      api,
		trainer:  trainer.New(sessions),
		words:    database.NewWordRepository(),
		sessions: sessions,
	}, nil
}

// Start runs the long-poll loop until the context is cancelled. Updates are
// handled one at a time, each to completion, so no two mutations for the
// same user race inside the bot.
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

// handleUpdate routes one update and keeps the loop alive on handler
// failures: the user gets an apology, the process moves on to the next event.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	if err := b.route(update.Message); err != nil {
		log.Printf("Error handling update from chat %d: %v", update.Message.Chat.ID, err)
		b.send(tgbotapi.NewMessage(update.Message.Chat.ID, msgSomethingWrong))
	}
}

func (b *Bot) send(msg tgbotapi.MessageConfig) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}
	return nil
}

// SendPracticeReminder nudges a user to practice; used by the scheduler
func (b *Bot) SendPracticeReminder(telegramID int64, wordCount int) error {
	text := fmt.Sprintf("👋 Время потренироваться!\n\nУ вас %d слов в тренажёре. Отправьте /cards, чтобы начать.", wordCount)
	return b.send(tgbotapi.NewMessage(telegramID, text))
}
