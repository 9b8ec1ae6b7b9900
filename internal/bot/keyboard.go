package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/cardbot/pkg/models"
)

func serviceLabels() []string {
	return []string{buttonNext, buttonAddWord, buttonDelete, buttonMyWords, buttonHelp}
}

// keyboardRows lays labels out two buttons per row
func keyboardRows(labels []string) [][]tgbotapi.KeyboardButton {
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(labels); i += 2 {
		row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(labels[i])}
		if i+1 < len(labels) {
			row = append(row, tgbotapi.NewKeyboardButton(labels[i+1]))
		}
		rows = append(rows, row)
	}
	return rows
}

// quizKeyboard renders answer options above the service buttons. When
// wrongAnswer is non-empty the matching option is marked so the user sees
// which pick failed on a retry.
func quizKeyboard(options []models.Word, wrongAnswer string) tgbotapi.ReplyKeyboardMarkup {
	labels := make([]string, 0, len(options)+5)
	for _, w := range options {
		label := w.English
		if wrongAnswer != "" && label == wrongAnswer {
			label = "❌ " + label
		}
		labels = append(labels, label)
	}
	labels = append(labels, serviceLabels()...)
	return tgbotapi.NewReplyKeyboard(keyboardRows(labels)...)
}

func serviceKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(keyboardRows(serviceLabels())...)
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(buttonCancel)),
	)
}
