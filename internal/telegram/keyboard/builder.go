package keyboard

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// Builder creates inline keyboards
type Builder struct{}

// NewBuilder creates a keyboard builder
func NewBuilder() *Builder {
	return &Builder{}
}

// ModeSelectionKeyboard creates the assessment mode selection buttons
func (b *Builder) ModeSelectionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧭 Full assessment", ModeCallback(entity.ModeIntegrated)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("PHQ-9", ModeCallback(entity.ModePHQ9)),
			tgbotapi.NewInlineKeyboardButtonData("DASS-21", ModeCallback(entity.ModeDASS21)),
			tgbotapi.NewInlineKeyboardButtonData("GAD-7", ModeCallback(entity.ModeGAD7)),
		),
	)
}

// QuestionKeyboard creates the response option buttons for the current
// question plus the navigation row. The selected option is marked.
func (b *Builder) QuestionKeyboard(options []entity.ResponseOption, answered bool, answer int, allowBack bool) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options)+2)

	for _, opt := range options {
		label := opt.Label
		if answered && opt.Value == answer {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, AnswerCallback(opt.Value)),
		))
	}

	nav := []tgbotapi.InlineKeyboardButton{}
	if allowBack {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", CallbackBack))
	}
	if answered {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", CallbackNext))
	}
	if len(nav) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(nav...))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Exit", CallbackExit),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ProcessingKeyboard creates the button shown while scoring runs
func (b *Builder) ProcessingKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Show results", CallbackResult),
		),
	)
}

// ResultsKeyboard creates the post-assessment buttons
func (b *Builder) ResultsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New assessment", CallbackNewSession),
		),
	)
}

// ExitConfirmKeyboard asks the user to confirm discarding a running session
func (b *Builder) ExitConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, exit", CallbackExitConfirm),
			tgbotapi.NewInlineKeyboardButtonData("Keep going", CallbackExitKeep),
		),
	)
}
