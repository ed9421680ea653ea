package notify

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/internal/pubsub"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

type TelegramConfig struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Telegram pushes notifications to a user's Telegram chat.
type Telegram struct {
	bot *telebot.Bot
	log logger.Logger
}

func NewTelegram(log logger.Logger, cfg TelegramConfig) (*Telegram, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.PollInterval},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "init telegram bot")
	}

	return &Telegram{
		bot: bot,
		log: log.With("telegram"),
	}, nil
}

func (t *Telegram) Send(ctx context.Context, user friends.User, topic string) error {
	if user.Recipient() == "" {
		return errors.Failf("notify %s: no telegram binding", user.ID)
	}

	_, err := t.bot.Send(user, topicText(topic), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return errors.WrapFail(err, "send telegram message")
}

func topicText(topic string) string {
	switch topic {
	case pubsub.TopicCalendar:
		return "A friend's calendar changed, the plans you share may have moved."
	case pubsub.TopicCommitment:
		return "A hang you attend was updated."
	default:
		return fmt.Sprintf("You have updates in %s.", topic)
	}
}
