package services

import (
	"context"
	"log/slog"
	"testing"
	"trashtalk/domain"
	"trashtalk/domain/event"
	"trashtalk/errors"
	"trashtalk/mocks"
	"trashtalk/repositories"
	"trashtalk/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBoardService_Instantiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIBoardRepository(ctrl)
	svc := NewBoardService(mockRepo, logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx := context.Background()

	t.Run("should create an empty board owned by the sender", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Create(domain.NewBoardState(17, "creator"), domain.CurrentContractInfo()).
			Return(nil).
			Times(1)

		res, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(17))})

		req.NoError(err)
		req.Equal([]domain.Attribute{
			{Key: "method", Value: "instantiate"},
			{Key: "owner", Value: "creator"},
			{Key: "count", Value: "17"},
		}, res.Attributes)
	})

	t.Run("should drop initial messages", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Create(domain.NewBoardState(-3, "creator"), gomock.Any()).
			Return(nil).
			Times(1)

		_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{
			Count:    lo.ToPtr(int32(-3)),
			Messages: []string{"ignored", "also ignored"},
		})

		req.NoError(err)
	})

	t.Run("should propagate already initialized", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.ErrAlreadyInitialized).
			Times(1)

		_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(0))})

		req.ErrorIs(err, errors.ErrAlreadyInitialized)
	})

	t.Run("should fail without count or sender", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{})
		req.ErrorIs(err, errors.ErrInvalidRequest)

		_, err = svc.Instantiate(ctx, "", domain.InstantiateMsg{Count: lo.ToPtr(int32(1))})
		req.ErrorIs(err, errors.ErrMissingSender)
	})
}

func TestBoardService_AddMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIBoardRepository(ctrl)
	svc := NewBoardService(mockRepo, slog.Default())
	ctx := context.Background()

	t.Run("should append through the repository update", func(t *testing.T) {
		req := require.New(t)
		stored := domain.NewBoardState(4, "creator")
		var written domain.BoardState

		mockRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(action func(domain.BoardState) (domain.BoardState, error)) (domain.BoardState, error) {
				next, err := action(stored)
				written = next
				return next, err
			}).
			Times(1)

		res, err := svc.AddMessage(ctx, "anyone", domain.Message{Text: "Hello", Nickname: "neo"})

		req.NoError(err)
		req.Equal([]domain.Attribute{{Key: "method", Value: "try_add_message"}}, res.Attributes)
		req.Equal(int32(5), written.Count)
		req.Equal([]domain.Message{{Text: "Hello", Nickname: "neo"}}, written.Messages)
		req.Equal(domain.Owner("creator"), written.Owner)
	})

	t.Run("should translate not found into not initialized", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			Update(gomock.Any()).
			Return(domain.BoardState{}, errors.ErrNotFound).
			Times(1)

		_, err := svc.AddMessage(ctx, "anyone", domain.NewMessage("Hello"))

		req.ErrorIs(err, errors.ErrNotInitialized)
	})
}

func TestBoardService_Queries_Before_Instantiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIBoardRepository(ctrl)
	svc := NewBoardService(mockRepo, slog.Default())
	ctx := context.Background()

	mockRepo.EXPECT().
		Load().
		Return(domain.BoardState{}, errors.ErrNotFound).
		Times(2)

	_, err := svc.GetCount(ctx)
	require.ErrorIs(t, err, errors.ErrNotInitialized)

	_, err = svc.GetMessages(ctx)
	require.ErrorIs(t, err, errors.ErrNotInitialized)
}

func newBadgerService(t *testing.T) *BoardService {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewBoardService(repositories.NewBoardRepository(db, log), log)
}

func Test_Instantiate_Then_Query_Without_Messages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newBadgerService(t)

	_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(17))})
	req.NoError(err)

	count, err := svc.GetCount(ctx)
	req.NoError(err)
	req.Equal(int32(17), count.Count)

	messages, err := svc.GetMessages(ctx)
	req.NoError(err)
	req.NotNil(messages.Messages)
	req.Empty(messages.Messages)
}

func Test_Add_Two_Messages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newBadgerService(t)

	_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(0))})
	req.NoError(err)

	for range 2 {
		_, err = svc.AddMessage(ctx, "anyone", domain.NewMessage("Hello"))
		req.NoError(err)
	}

	count, err := svc.GetCount(ctx)
	req.NoError(err)
	req.Equal(int32(2), count.Count)

	messages, err := svc.GetMessages(ctx)
	req.NoError(err)
	req.Equal([]string{"Hello", "Hello"}, lo.Map(messages.Messages, func(m domain.Message, _ int) string {
		return m.Text
	}))
}

func Test_Count_Is_Initial_Count_Plus_Added_Messages(t *testing.T) {
	for _, initial := range []int32{-50, 0, 7, 1000} {
		for _, k := range []int{0, 1, 5} {
			req := require.New(t)
			ctx := context.Background()
			svc := newBadgerService(t)

			_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(initial)})
			req.NoError(err)
			for i := 0; i < k; i++ {
				_, err = svc.AddMessage(ctx, "anyone", domain.NewMessage("msg"))
				req.NoError(err)
			}

			count, err := svc.GetCount(ctx)
			req.NoError(err)
			req.Equal(initial+int32(k), count.Count)
		}
	}
}

func Test_Messages_Keep_Call_Order_And_Duplicates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newBadgerService(t)
	_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(0))})
	req.NoError(err)

	posted := []domain.Message{
		{Text: "b", Nickname: "bob"},
		{Text: "a"},
		{Text: "b", Nickname: "bob"},
		{Text: "c", Nickname: "clara"},
	}
	for _, m := range posted {
		_, err = svc.AddMessage(ctx, "anyone", m)
		req.NoError(err)
	}

	messages, err := svc.GetMessages(ctx)
	req.NoError(err)
	req.Equal(posted, messages.Messages)
}

func Test_Operations_Before_Instantiate_Fail(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newBadgerService(t)

	_, err := svc.AddMessage(ctx, "anyone", domain.NewMessage("Hello"))
	req.ErrorIs(err, errors.ErrNotInitialized)

	_, err = svc.GetCount(ctx)
	req.ErrorIs(err, errors.ErrNotInitialized)

	_, err = svc.GetMessages(ctx)
	req.ErrorIs(err, errors.ErrNotInitialized)
}

func Test_Second_Instantiate_Fails(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newBadgerService(t)

	_, err := svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(1))})
	req.NoError(err)

	_, err = svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(2))})
	req.ErrorIs(err, errors.ErrAlreadyInitialized)

	count, err := svc.GetCount(ctx)
	req.NoError(err)
	req.Equal(int32(1), count.Count)
}

func Test_Owner_Is_Unaffected_By_Other_Senders(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository := repositories.NewBoardRepository(db, slog.Default())
	svc := NewBoardService(repository, slog.Default())

	_, err = svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(0))})
	req.NoError(err)
	_, err = svc.AddMessage(ctx, "stranger", domain.NewMessage("mine now"))
	req.NoError(err)

	state, err := repository.Load()
	req.NoError(err)
	req.Equal(domain.Owner("creator"), state.Owner)
}

func TestBoardService_Publishes_Events_After_Commit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)
	ctx := context.Background()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	failing := mocks.NewMockEventSink(ctrl)
	timeline := sink.NewTimeline()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := NewBoardService(repositories.NewBoardRepository(db, log), log, failing, timeline)

	// A failing sink must not fail a committed command
	failing.EXPECT().
		Consume(ctx, gomock.AssignableToTypeOf(event.BoardInstantiated{})).
		Return(assert.AnError).
		Times(1)
	failing.EXPECT().
		Consume(ctx, gomock.AssignableToTypeOf(event.MessageAdded{})).
		Return(nil).
		Times(1)

	_, err = svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(4))})
	req.NoError(err)
	_, err = svc.AddMessage(ctx, "anyone", domain.NewMessage("hi"))
	req.NoError(err)

	// Rejected commands publish nothing
	_, err = svc.Instantiate(ctx, "creator", domain.InstantiateMsg{Count: lo.ToPtr(int32(1))})
	req.ErrorIs(err, errors.ErrAlreadyInitialized)

	snapshot := timeline.Snapshot()
	req.Equal(domain.Owner("creator"), snapshot.Owner)
	req.Equal(int32(5), snapshot.Count)
	req.Equal([]domain.Message{{Text: "hi"}}, snapshot.Messages)
}
