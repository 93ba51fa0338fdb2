package events

import (
	"context"

	"github.com/revel-xyz/revel-gate/internal/domain"
)

// Publisher defines the interface for publishing drop activity events to the
// message broker. Publishing is best-effort: a failed publish never fails the
// view or unlock that produced the event.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishDropEvent publishes a drop activity event
	PublishDropEvent(ctx context.Context, event *domain.DropEvent) error
	// Close closes the connection
	Close()
}
