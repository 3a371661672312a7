package notify

import (
	"fmt"
	"time"

	"employee_voting_system/configs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier posts portal events to the admins' chat. OTP
// codes never go to Telegram; only poll lifecycle events do.
func NewTelegramNotifier(config configs.Telegram) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &telegramNotifier{
		bot:    bot,
		chatID: config.AdminChatID,
	}, nil
}

func (t *telegramNotifier) OTPIssued(string, string) error {
	return nil
}

func (t *telegramNotifier) PollCreated(recipients []string, subject string, start, end time.Time) error {
	text := fmt.Sprintf(
		"New vote created: %s\nOpens: %s\nCloses: %s\nNotified employees: %d",
		subject,
		start.Format(dateTimeFormat),
		end.Format(dateTimeFormat),
		len(recipients),
	)

	_, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text))
	return err
}
