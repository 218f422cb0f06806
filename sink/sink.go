//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=../mocks/mock_event_sink.go -package=mocks
package sink

import (
	"context"
	"trashtalk/domain/event"
)

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
