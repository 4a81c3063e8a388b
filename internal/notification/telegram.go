package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.LogAttrs(context.Background(), logger.WarnLevel, "telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: log}, nil
}

func (n *TelegramNotifier) NotifyHoldExpired(
	ctx context.Context,
	user *domain.User,
	item *domain.BookableItem,
	r *domain.Reservation,
) {
	text := fmt.Sprintf(
		"*Бронь снята (истекло время ожидания)*\n\n"+"%s\n"+"Дата: %s, %s (UTC)\n"+"Мест: %d",
		item.Name, r.Date.Format("02.01.2006"), r.Time, r.Quantity,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCheckoutConfirmed(ctx context.Context, user *domain.User, items []domain.CartItemView) {
	var b strings.Builder
	b.WriteString("*Заказ подтверждён!*\n\n")

	var total int64
	for _, it := range items {
		fmt.Fprintf(&b, "%s: %s %s, мест %d, %s\n",
			it.ItemName, it.Date.Format("02.01.2006"), it.Time, it.Quantity, formatPrice(it.Total))
		total += it.Total
	}
	fmt.Fprintf(&b, "\nИтого: %s", formatPrice(total))

	n.send(ctx, user.TelegramChatID, b.String())
}

// formatPrice renders minor units as "123.45".
func formatPrice(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
