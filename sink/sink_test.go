package sink_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"
	"trashtalk/domain"
	"trashtalk/domain/event"
	"trashtalk/sink"

	"github.com/stretchr/testify/require"
)

func TestTimeline_Consume(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	timeline := sink.NewTimeline()

	req.NoError(timeline.Consume(ctx, event.BoardInstantiated{Owner: "creator", Count: 7, At: time.Now()}))
	req.NoError(timeline.Consume(ctx, event.MessageAdded{Sender: "anyone", Message: domain.NewMessage("hi"), Count: 8, At: time.Now()}))

	snapshot := timeline.Snapshot()
	req.Equal(domain.Owner("creator"), snapshot.Owner)
	req.Equal(int32(8), snapshot.Count)
	req.Equal([]domain.Message{{Text: "hi"}}, snapshot.Messages)
}

func TestAuditSink_Consume(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	err := sink.NewAuditSink(log).Consume(context.Background(), event.BoardInstantiated{Owner: "creator", Count: 3})

	req.NoError(err)
	req.Contains(buf.String(), `"method":"instantiate"`)
	req.Contains(buf.String(), `"owner":"creator"`)
	req.Contains(buf.String(), `"count":"3"`)
}
