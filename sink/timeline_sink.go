package sink

import (
	"context"
	"sync"
	"trashtalk/domain"
	"trashtalk/domain/event"
)

// Timeline rebuilds a copy of the board from events only.
type Timeline struct {
	mu       sync.Mutex
	owner    domain.Owner
	count    int32
	messages []domain.Message
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch evt := e.(type) {
	case event.BoardInstantiated:
		t.owner = evt.Owner
		t.count = evt.Count
		t.messages = nil
	case event.MessageAdded:
		t.messages = append(t.messages, evt.Message)
		t.count = evt.Count
	}
	return nil
}

func (t *Timeline) Snapshot() domain.BoardState {
	t.mu.Lock()
	defer t.mu.Unlock()
	messages := make([]domain.Message, len(t.messages))
	copy(messages, t.messages)
	return domain.BoardState{Messages: messages, Count: t.count, Owner: t.owner}
}
