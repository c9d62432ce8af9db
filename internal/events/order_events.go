package events

import (
	"time"

	"elaundry/internal/entities"
)

const OrderSubmittedEventName = "order.submitted"

// OrderSubmittedEvent is published once a draft passes validation.
// Branch is nil when the visitor did not pick one.
type OrderSubmittedEvent struct {
	Draft      entities.OrderDraft
	Branch     *entities.Branch
	ReceivedAt time.Time
}

func (e OrderSubmittedEvent) Name() string {
	return OrderSubmittedEventName
}
