package messaging

import "context"

// Topics carrying order lifecycle events.
const (
	TopicOrderPlaced        = "orders.placed"
	TopicOrderStatusChanged = "orders.status_changed"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}
