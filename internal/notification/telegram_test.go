package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func chat(id int64) *int64 { return &id }

var testDay = time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

func TestNotifyHoldExpired(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyHoldExpired(context.Background(),
		&domain.User{TelegramChatID: chat(7)},
		&domain.BookableItem{Name: "City walk"},
		&domain.Reservation{Date: testDay, Time: domain.NewTimeOfDay(9, 0), Quantity: 3},
	)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(7), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "City walk")
	assert.Contains(t, bot.sent[0].Text, "02.11.2026, 09:00")
}

func TestNotifyCheckoutConfirmed(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyCheckoutConfirmed(context.Background(), &domain.User{TelegramChatID: chat(7)}, []domain.CartItemView{
		{ItemName: "City walk", Date: testDay, Time: domain.NewTimeOfDay(9, 0), Quantity: 2, Total: 6000},
		{ItemName: "Bus", Date: testDay, Time: domain.NewTimeOfDay(10, 0), Quantity: 1, Total: 1050},
	})

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "Итого: 70.50")
}

func TestSend_Skips(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.send(context.Background(), nil, "no chat")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.send(ctx, chat(1), "cancelled")

	assert.Empty(t, bot.sent)

	disabled := &TelegramNotifier{logger: newTestLogger(t)}
	disabled.send(context.Background(), chat(1), "disabled")
}

func TestSend_ErrorIsLogged(t *testing.T) {
	bot := &fakeBot{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.send(context.Background(), chat(1), "hello")
	assert.Len(t, bot.sent, 1)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.05", formatPrice(5))
	assert.Equal(t, "30.00", formatPrice(3000))
}
