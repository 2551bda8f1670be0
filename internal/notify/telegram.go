package notify

import (
	"fmt"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobboard-automation/internal/config"
)

// Reporter posts run summaries to a Telegram chat. Notifications are
// optional: operators without a bot configured run without them.
type Reporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewReporter returns (nil, nil) when no token or chat is configured.
func NewReporter(cfg *config.Config) (*Reporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Reporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (r *Reporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := r.bot.Send(msg)
	return err
}

// SendRunSummary reports one finished collect-and-extract pass.
func (r *Reporter) SendRunSummary(site, city, experience string, records int, csvPath string) error {
	text := fmt.Sprintf(
		"🏁 <b>%s</b> finished\n"+
			"📍 %s / %s\n"+
			"📦 %s offers extracted\n"+
			"📁 %s",
		site,
		city,
		experience,
		humanize.Comma(int64(records)),
		csvPath,
	)
	return r.SendMessage(text)
}

func (r *Reporter) SendError(runErr error) error {
	text := fmt.Sprintf("⚠️ <b>Collection error</b>:\n%v", runErr)
	return r.SendMessage(text)
}
