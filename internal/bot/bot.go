package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Bot answers staff commands in the salon's group chat and forwards
// backend notifications posted to its /notify endpoint.
type Bot struct {
	tg      telegramClient
	api     *APIClient
	groupID int64
	loc     *time.Location
	logger  zerolog.Logger
}

func New(token string, api *APIClient, groupID int64, loc *time.Location, logger zerolog.Logger) (*Bot, error) {
	tg, err := newTelegramClient(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		tg:      tg,
		api:     api,
		groupID: groupID,
		loc:     loc,
		logger:  logger,
	}, nil
}

// Start consumes Telegram updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := b.tg.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	// Commands are staff-only; ignore anything outside the group chat.
	if b.groupID != 0 && msg.Chat.ID != b.groupID {
		return
	}

	now := time.Now().In(b.loc)

	var reply string
	switch msg.Command() {
	case "today":
		reply = b.daySchedule(ctx, now, "📅 Today")
	case "tomorrow":
		reply = b.daySchedule(ctx, now.AddDate(0, 0, 1), "📅 Tomorrow")
	case "stats":
		reply = b.dayStats(ctx, now)
	case "help", "start":
		reply = "Commands:\n/today — today's schedule\n/tomorrow — tomorrow's schedule\n/stats — today's numbers"
	default:
		return
	}

	b.reply(msg.Chat.ID, reply)
}

func (b *Bot) daySchedule(ctx context.Context, date time.Time, title string) string {
	appointments, err := b.api.AppointmentsByDate(ctx, date)
	if err != nil {
		b.logger.Error().Err(err).Msg("fetch schedule failed")
		return "Could not reach the booking backend."
	}
	return formatDaySchedule(title+" — "+date.Format("Mon, 02 Jan"), appointments)
}

func (b *Bot) dayStats(ctx context.Context, date time.Time) string {
	appointments, err := b.api.AppointmentsByDate(ctx, date)
	if err != nil {
		b.logger.Error().Err(err).Msg("fetch stats failed")
		return "Could not reach the booking backend."
	}
	return formatStats(date, appointments)
}

func (b *Bot) reply(chatID int64, text string) {
	if text == "" {
		return
	}
	if _, err := b.tg.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error().Err(err).Msg("telegram send failed")
	}
}
