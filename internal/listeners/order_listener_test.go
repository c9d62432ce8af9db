package listeners

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"elaundry/internal/entities"
	"elaundry/internal/events"
	"elaundry/pkg/config"
	"elaundry/pkg/eventbus"
	"elaundry/pkg/telegram"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegram struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	return f.SendMessageEx(ctx, chatID, text)
}

func (f *fakeTelegram) SendMessageEx(_ context.Context, chatID int64, text string, _ ...telegram.MessageOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return f.err
}

func orderEvent() events.OrderSubmittedEvent {
	return events.OrderSubmittedEvent{
		Draft: entities.OrderDraft{
			Name:        "Rahim",
			Phone:       "01711111111",
			Address:     "Road 11. Dhanmondi",
			ServiceType: entities.ServiceWashIron,
			Date:        "2025-12-10",
			Notes:       "no starch",
		},
		Branch:     &entities.Branch{ID: "1", Name: "Dhanmondi Branch"},
		ReceivedAt: time.Date(2025, 12, 9, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderListenerSendsTelegram(t *testing.T) {
	tg := &fakeTelegram{}
	bus := eventbus.New(zap.NewNop())
	NewOrderListener(tg, config.TelegramConfig{ChatID: 42}, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), orderEvent())
	bus.Wait()

	require.Len(t, tg.sent, 1)
	assert.Equal(t, int64(42), tg.sent[0].chatID)
	assert.Contains(t, tg.sent[0].text, "Service: Wash & Iron")
	assert.Contains(t, tg.sent[0].text, "Branch: Dhanmondi Branch")
	assert.Contains(t, tg.sent[0].text, `Road 11\. Dhanmondi`)
	assert.Contains(t, tg.sent[0].text, "Pickup: 2025\\-12\\-10")
}

func TestOrderListenerWithoutChatOnlyLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tg := &fakeTelegram{}
	bus := eventbus.New(zap.NewNop())
	NewOrderListener(tg, config.TelegramConfig{}, zap.New(core)).Register(bus)

	bus.Publish(context.Background(), orderEvent())
	bus.Wait()

	assert.Empty(t, tg.sent)
	assert.Equal(t, 1, logs.FilterMessage("new order").Len())
}

func TestOrderListenerReportsSendFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	tg := &fakeTelegram{err: errors.New("bad gateway")}
	bus := eventbus.New(zap.New(core))
	NewOrderListener(tg, config.TelegramConfig{ChatID: 1}, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), orderEvent())
	bus.Wait()

	assert.Equal(t, 1, logs.FilterMessage("event listener failed").Len())
}
