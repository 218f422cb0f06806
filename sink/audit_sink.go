package sink

import (
	"context"
	"log/slog"
	"trashtalk/domain"
	"trashtalk/domain/event"

	"github.com/samber/lo"
)

// AuditSink writes every board event as a structured log line.
type AuditSink struct {
	log *slog.Logger
}

func NewAuditSink(log *slog.Logger) AuditSink {
	return AuditSink{log: log}
}

func (a AuditSink) Consume(ctx context.Context, e event.DomainEvent) error {
	attrs := lo.Map(e.Attributes(), func(attr domain.Attribute, _ int) any {
		return slog.String(attr.Key, attr.Value)
	})
	a.log.InfoContext(ctx, "Board event", attrs...)
	return nil
}
