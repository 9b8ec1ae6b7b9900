package bot

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/cardbot/internal/database"
	"github.com/example/cardbot/internal/quiz"
	"github.com/example/cardbot/internal/session"
	"github.com/example/cardbot/pkg/models"
)

// route dispatches one message: commands first, then whatever collect flow
// the conversation is in, then service buttons, and finally everything else
// is treated as a quiz answer.
func (b *Bot) route(msg *tgbotapi.Message) error {
	key := session.Key{UserID: msg.From.ID, ChatID: msg.Chat.ID}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "cards":
			return b.handleStart(msg, key)
		case "mywords":
			return b.handleMyWords(msg)
		case "help":
			return b.handleHelp(msg)
		default:
			return b.handleHelp(msg)
		}
	}

	data, _ := b.sessions.Get(key)
	switch data.State {
	case session.AwaitingEnglish:
		return b.handleEnglishInput(msg, key)
	case session.AwaitingRussian:
		return b.handleRussianInput(msg, key, data)
	case session.AwaitingDeleteChoice:
		return b.handleDeleteChoice(msg, key, data)
	}

	switch msg.Text {
	case buttonNext:
		return b.nextCard(msg, key)
	case buttonAddWord:
		return b.beginAddWord(msg, key)
	case buttonDelete:
		return b.beginDeleteWord(msg, key)
	case buttonMyWords:
		return b.handleMyWords(msg)
	case buttonHelp:
		return b.handleHelp(msg)
	}

	return b.handleAnswer(msg, key)
}

// provision resolves the store user for a message. The chat ID is the stable
// external identity, profile fields are taken as Telegram reports them.
func (b *Bot) provision(msg *tgbotapi.Message) (*models.User, error) {
	return b.trainer.Provision(msg.Chat.ID, msg.From.UserName, msg.From.FirstName, msg.From.LastName)
}

func (b *Bot) handleStart(msg *tgbotapi.Message, key session.Key) error {
	user, err := b.provision(msg)
	if err != nil {
		return err
	}

	if msg.Command() == "start" {
		if err := b.send(tgbotapi.NewMessage(msg.Chat.ID, welcomeMessage)); err != nil {
			return err
		}
	}

	return b.sendQuizCard(msg.Chat.ID, key, user.ID)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	m := tgbotapi.NewMessage(msg.Chat.ID, helpMessage)
	m.ParseMode = tgbotapi.ModeMarkdown
	return b.send(m)
}

func (b *Bot) nextCard(msg *tgbotapi.Message, key session.Key) error {
	user, err := b.provision(msg)
	if err != nil {
		return err
	}
	return b.sendQuizCard(msg.Chat.ID, key, user.ID)
}

// sendQuizCard asks the trainer for a card and renders it. An insufficient
// catalog is reported to the user instead of crashing the turn.
func (b *Bot) sendQuizCard(chatID int64, key session.Key, userID int64) error {
	set, err := b.trainer.StartQuiz(userID, key)
	if errors.Is(err, quiz.ErrInsufficientVocabulary) {
		return b.send(tgbotapi.NewMessage(chatID, msgNotEnoughWords))
	}
	if err != nil {
		return err
	}

	m := tgbotapi.NewMessage(chatID, fmt.Sprintf("🇷🇺 *%s*\n\nВыбери перевод:", set.Target.Russian))
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyMarkup = quizKeyboard(set.Options, "")
	return b.send(m)
}

func (b *Bot) handleAnswer(msg *tgbotapi.Message, key session.Key) error {
	answer := strings.TrimSpace(msg.Text)

	result, ok := b.trainer.SubmitAnswer(key, answer)
	if !ok {
		// Нет активной карточки - просто выдаем новую
		return b.nextCard(msg, key)
	}

	if result.Correct {
		m := tgbotapi.NewMessage(msg.Chat.ID,
			fmt.Sprintf("✅ *Правильно!*\n\n%s - %s", result.Target.English, result.Target.Russian))
		m.ParseMode = tgbotapi.ModeMarkdown
		m.ReplyMarkup = serviceKeyboard()
		return b.send(m)
	}

	// Та же карточка остается активной, неверный вариант помечаем
	m := tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("❌ *Неправильно!*\n\nПравильный ответ: %s\nСлово: %s", result.Target.English, result.Target.Russian))
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyMarkup = quizKeyboard(result.Options, answer)
	return b.send(m)
}

func (b *Bot) beginAddWord(msg *tgbotapi.Message, key session.Key) error {
	b.sessions.Set(key, session.Data{State: session.AwaitingEnglish})

	m := tgbotapi.NewMessage(msg.Chat.ID, msgEnterEnglish)
	m.ReplyMarkup = cancelKeyboard()
	return b.send(m)
}

func (b *Bot) handleEnglishInput(msg *tgbotapi.Message, key session.Key) error {
	if msg.Text == buttonCancel {
		return b.cancelFlow(msg, key)
	}

	b.sessions.Set(key, session.Data{
		State:          session.AwaitingRussian,
		PendingEnglish: strings.TrimSpace(msg.Text),
	})

	m := tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("Английское: *%s*\n\nТеперь введите перевод:", strings.TrimSpace(msg.Text)))
	m.ParseMode = tgbotapi.ModeMarkdown
	m.ReplyMarkup = cancelKeyboard()
	return b.send(m)
}

func (b *Bot) handleRussianInput(msg *tgbotapi.Message, key session.Key, data session.Data) error {
	if msg.Text == buttonCancel {
		return b.cancelFlow(msg, key)
	}

	user, err := b.provision(msg)
	if err != nil {
		return err
	}

	result, err := b.words.AddToUser(user.ID, data.PendingEnglish, msg.Text)
	if err != nil {
		b.sessions.Clear(key)
		return err
	}

	var response string
	switch result.Outcome {
	case database.OutcomeAdded:
		response = fmt.Sprintf("✅ *Слово добавлено!*\n\n%s - %s", result.English, result.Russian)
	case database.OutcomeRestored:
		response = fmt.Sprintf("✅ *Слово восстановлено!*\n\n%s - %s", result.English, result.Russian)
	case database.OutcomeAlreadyPresent:
		response = fmt.Sprintf("ℹ️ *Слово уже есть:*\n\n%s - %s", result.English, result.Russian)
	}

	m := tgbotapi.NewMessage(msg.Chat.ID, response)
	m.ParseMode = tgbotapi.ModeMarkdown
	if err := b.send(m); err != nil {
		return err
	}

	b.sessions.Clear(key)
	return b.sendQuizCard(msg.Chat.ID, key, user.ID)
}

func (b *Bot) beginDeleteWord(msg *tgbotapi.Message, key session.Key) error {
	user, err := b.provision(msg)
	if err != nil {
		return err
	}

	// Удалять можно только собственные слова
	words, err := b.words.ListByUser(user.ID, false, false)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return b.send(tgbotapi.NewMessage(msg.Chat.ID, msgNothingToDelete))
	}

	if len(words) > 12 {
		words = words[:12]
	}

	choices := make(map[string]int64, len(words))
	labels := make([]string, 0, len(words))
	for _, w := range words {
		label := fmt.Sprintf("%s - %s", w.English, w.Russian)
		choices[label] = w.ID
		labels = append(labels, label)
	}

	b.sessions.Set(key, session.Data{
		State:         session.AwaitingDeleteChoice,
		DeleteChoices: choices,
	})

	rows := keyboardRows(labels)
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(buttonCancel)))

	m := tgbotapi.NewMessage(msg.Chat.ID, msgChooseToDelete)
	m.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)
	return b.send(m)
}

func (b *Bot) handleDeleteChoice(msg *tgbotapi.Message, key session.Key, data session.Data) error {
	if msg.Text == buttonCancel {
		return b.cancelFlow(msg, key)
	}

	wordID, found := data.DeleteChoices[msg.Text]
	if !found {
		// Состояние сохраняем, пользователь может выбрать еще раз
		return b.send(tgbotapi.NewMessage(msg.Chat.ID, msgPickFromList))
	}

	user, err := b.provision(msg)
	if err != nil {
		return err
	}

	deleted, reason, err := b.words.SoftDelete(user.ID, wordID)
	if err != nil {
		b.sessions.Clear(key)
		return err
	}

	prefix := "✅ "
	if !deleted {
		prefix = "❌ "
	}
	if err := b.send(tgbotapi.NewMessage(msg.Chat.ID, prefix+reason)); err != nil {
		return err
	}

	b.sessions.Clear(key)
	return b.sendQuizCard(msg.Chat.ID, key, user.ID)
}

// cancelFlow is the universal cancel: drop whatever was being collected and
// go straight back to a fresh card
func (b *Bot) cancelFlow(msg *tgbotapi.Message, key session.Key) error {
	b.sessions.Clear(key)
	return b.nextCard(msg, key)
}

func (b *Bot) handleMyWords(msg *tgbotapi.Message) error {
	user, err := b.provision(msg)
	if err != nil {
		return err
	}

	all, err := b.words.AllActiveForUser(user.ID)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return b.send(tgbotapi.NewMessage(msg.Chat.ID, msgNoWords))
	}

	defaults, err := b.words.DefaultsForUser(user.ID)
	if err != nil {
		return err
	}
	custom, err := b.words.ListByUser(user.ID, false, false)
	if err != nil {
		return err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "📚 *Ваши слова (%d):*\n\n", len(all))

	if len(defaults) > 0 {
		text.WriteString("*Слова по умолчанию:*\n")
		for i, w := range defaults {
			if i == 5 {
				fmt.Fprintf(&text, "... и ещё %d\n", len(defaults)-5)
				break
			}
			fmt.Fprintf(&text, "• %s - %s\n", w.English, w.Russian)
		}
		text.WriteString("\n")
	}

	if len(custom) > 0 {
		text.WriteString("*Ваши слова:*\n")
		for i, w := range custom {
			if i == 10 {
				fmt.Fprintf(&text, "... и ещё %d", len(custom)-10)
				break
			}
			fmt.Fprintf(&text, "• %s - %s\n", w.English, w.Russian)
		}
	}

	m := tgbotapi.NewMessage(msg.Chat.ID, text.String())
	m.ParseMode = tgbotapi.ModeMarkdown
	return b.send(m)
}
