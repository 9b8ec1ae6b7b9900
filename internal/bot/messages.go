package bot

// Reply-keyboard button labels. Button text doubles as the dispatch key, so
// these must match what Telegram sends back verbatim.
const (
	buttonNext    = "⏭ Дальше"
	buttonAddWord = "➕ Добавить слово"
	buttonDelete  = "🔙 Удалить слово"
	buttonMyWords = "📚 Мои слова"
	buttonHelp    = "❓ Помощь"
	buttonCancel  = "❌ Отмена"
)

const welcomeMessage = `Привет 👋

Давай попрактикуемся в английском языке. Тренировки можешь проходить в удобном для себя темпе.

У тебя есть возможность использовать тренажёр, как конструктор, и собирать свою собственную базу для обучения. Для этого воспользуйся инструментами:
- добавить слово ➕,
- удалить слово 🔙,
- мои слова 📚.

Ну что, начнём ⬇️`

const helpMessage = `🤖 *Команды бота:*

/start - Начать работу
/cards - Новая карточка
/mywords - Мои слова
/help - Помощь

*Кнопки:*
⏭ Дальше - Следующее слово
➕ Добавить слово - Добавить новое слово
🔙 Удалить слово - Удалить ваше слово
📚 Мои слова - Показать все слова
❓ Помощь - Справка`

const (
	msgSomethingWrong  = "❌ Что-то пошло не так. Попробуйте ещё раз."
	msgNotEnoughWords  = "Недостаточно слов для тренировки. Добавьте слова!"
	msgNoWords         = "У вас пока нет слов. Добавьте слова с помощью кнопки '➕ Добавить слово'."
	msgNothingToDelete = "У вас нет слов для удаления.\n\nВы можете удалять только слова, которые вы сами добавили."
	msgPickFromList    = "Выберите слово из списка!"
	msgEnterEnglish    = "Введите английское слово:"
	msgChooseToDelete  = "Выберите слово для удаления:"
)
