package event

import (
	"strconv"
	"time"
	"trashtalk/domain"
)

// DomainEvent is published once a command has been persisted.
type DomainEvent interface {
	Method() string
	Attributes() []domain.Attribute
}

type BoardInstantiated struct {
	Owner domain.Owner
	Count int32
	At    time.Time
}

func (b BoardInstantiated) Method() string {
	return domain.MethodInstantiate
}

func (b BoardInstantiated) Attributes() []domain.Attribute {
	return []domain.Attribute{
		{Key: "method", Value: b.Method()},
		{Key: "owner", Value: string(b.Owner)},
		{Key: "count", Value: strconv.FormatInt(int64(b.Count), 10)},
	}
}

type MessageAdded struct {
	Sender  domain.Owner
	Message domain.Message
	Count   int32
	At      time.Time
}

func (m MessageAdded) Method() string {
	return domain.MethodTryAddMessage
}

func (m MessageAdded) Attributes() []domain.Attribute {
	return []domain.Attribute{
		{Key: "method", Value: m.Method()},
		{Key: "sender", Value: string(m.Sender)},
		{Key: "count", Value: strconv.FormatInt(int64(m.Count), 10)},
	}
}
