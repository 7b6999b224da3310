package services

// Marketplace event names published to the broker.
const (
	EventPurchaseCompleted   = "purchase.completed"
	EventSubscriptionCreated = "subscription.created"
	EventAlbumPublished      = "album.published"
)

// EventPublisher publishes marketplace events to the message broker.
// Implemented by pkg/rabbitmq.Client. Services treat a nil publisher as
// "events disabled" and never fail a business operation on a publish error.
type EventPublisher interface {
	Publish(event string, payload interface{}) error
}
