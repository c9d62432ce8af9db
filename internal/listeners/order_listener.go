package listeners

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"elaundry/internal/events"
	"elaundry/pkg/config"
	"elaundry/pkg/eventbus"
	"elaundry/pkg/telegram"
)

// OrderListener tells the shop about accepted orders. Without a bot token
// or chat id it only logs.
type OrderListener struct {
	telegram telegram.ServiceInterface
	chatID   int64
	logger   *zap.Logger
}

func NewOrderListener(tg telegram.ServiceInterface, cfg config.TelegramConfig, logger *zap.Logger) *OrderListener {
	return &OrderListener{telegram: tg, chatID: cfg.ChatID, logger: logger}
}

func (l *OrderListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.OrderSubmittedEventName, l.handleOrderSubmitted)
	l.logger.Info("order listener subscribed", zap.String("event", events.OrderSubmittedEventName))
}

func (l *OrderListener) handleOrderSubmitted(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.OrderSubmittedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", e)
	}

	l.logger.Info("new order",
		zap.String("name", event.Draft.Name),
		zap.String("service", event.Draft.ServiceType.Label()),
		zap.Time("received_at", event.ReceivedAt),
	)

	if l.telegram == nil || l.chatID == 0 {
		return nil
	}
	if err := l.telegram.SendMessageEx(ctx, l.chatID, formatOrderMessage(event), telegram.WithMarkdownV2()); err != nil {
		return fmt.Errorf("notify telegram: %w", err)
	}
	return nil
}

func formatOrderMessage(e events.OrderSubmittedEvent) string {
	esc := telegram.EscapeTextForMarkdownV2
	d := e.Draft

	var b strings.Builder
	b.WriteString("*New order*\n")
	fmt.Fprintf(&b, "Name: %s\n", esc(d.Name))
	fmt.Fprintf(&b, "Phone: %s\n", esc(d.Phone))
	fmt.Fprintf(&b, "Address: %s\n", esc(d.Address))
	fmt.Fprintf(&b, "Service: %s\n", esc(d.ServiceType.Label()))
	if e.Branch != nil {
		fmt.Fprintf(&b, "Branch: %s\n", esc(e.Branch.Name))
	}
	if d.Date != "" || d.Time != "" {
		fmt.Fprintf(&b, "Pickup: %s\n", esc(strings.TrimSpace(d.Date+" "+d.Time)))
	}
	if d.Notes != "" {
		fmt.Fprintf(&b, "Notes: _%s_\n", esc(d.Notes))
	}
	return b.String()
}
