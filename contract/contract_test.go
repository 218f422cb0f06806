package contract

import (
	"context"
	"log/slog"
	"testing"
	"trashtalk/domain"
	"trashtalk/errors"
	"trashtalk/mocks"
	"trashtalk/repositories"
	"trashtalk/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContract_Decoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockIBoardService(ctrl)
	c := NewContract(mockService, slog.Default())
	ctx := context.Background()

	t.Run("should pass count and messages to instantiate", func(t *testing.T) {
		req := require.New(t)
		expected := domain.InstantiateMsg{Count: lo.ToPtr(int32(17)), Messages: []string{"a"}}

		mockService.EXPECT().
			Instantiate(ctx, domain.Owner("creator"), expected).
			Return(domain.NewResponse().AddAttribute("method", "instantiate"), nil).
			Times(1)

		res, err := c.Instantiate(ctx, "creator", []byte(`{"count":17,"messages":["a"]}`))

		req.NoError(err)
		req.Len(res.Attributes, 1)
	})

	t.Run("should accept both message shapes", func(t *testing.T) {
		req := require.New(t)

		mockService.EXPECT().
			AddMessage(ctx, domain.Owner("anyone"), domain.Message{Text: "Hello"}).
			Return(domain.NewResponse(), nil).
			Times(1)
		mockService.EXPECT().
			AddMessage(ctx, domain.Owner("anyone"), domain.Message{Text: "Hello", Nickname: "neo"}).
			Return(domain.NewResponse(), nil).
			Times(1)

		_, err := c.Execute(ctx, "anyone", []byte(`{"add_message":{"message":"Hello"}}`))
		req.NoError(err)
		_, err = c.Execute(ctx, "anyone", []byte(`{"add_message":{"message":{"message":"Hello","nickname":"neo"}}}`))
		req.NoError(err)
	})

	t.Run("should reject malformed requests before any handler", func(t *testing.T) {
		mockService.EXPECT().Instantiate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		mockService.EXPECT().AddMessage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		mockService.EXPECT().GetCount(gomock.Any()).Times(0)
		mockService.EXPECT().GetMessages(gomock.Any()).Times(0)

		instantiates := []string{
			`{"messages":[]}`,
			`{"count":"17","messages":[]}`,
			`{"count":2147483648}`,
			`{"count":1,"owner":"me"}`,
			`{"count":1}}`,
			`{"count":1} 2`,
			`not json`,
		}
		for _, raw := range instantiates {
			_, err := c.Instantiate(ctx, "creator", []byte(raw))
			require.ErrorIs(t, err, errors.ErrInvalidRequest, raw)
		}

		executes := []string{
			`{}`,
			`{"add_message":{}}`,
			`{"add_message":{"message":42}}`,
			`{"remove_message":{"index":0}}`,
			`{"add_message":{"message":"a"}} {"add_message":{"message":"b"}}`,
		}
		for _, raw := range executes {
			_, err := c.Execute(ctx, "anyone", []byte(raw))
			require.ErrorIs(t, err, errors.ErrInvalidRequest, raw)
		}

		queries := []string{
			`{}`,
			`{"get_owner":{}}`,
			`{"get_count":{},"get_messages":{}}`,
			`{"get_count":{"limit":3}}`,
			`{"get_count":{}}]`,
			`{"get_count":{}}}`,
		}
		for _, raw := range queries {
			_, err := c.Query(ctx, []byte(raw))
			require.ErrorIs(t, err, errors.ErrInvalidRequest, raw)
		}
	})

	t.Run("should encode query answers", func(t *testing.T) {
		req := require.New(t)

		mockService.EXPECT().
			GetCount(ctx).
			Return(domain.CountResponse{Count: 3}, nil).
			Times(1)

		res, err := c.Query(ctx, []byte(`{"get_count":{}}`))

		req.NoError(err)
		req.JSONEq(`{"count":3}`, string(res))
	})
}

func Test_Contract_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	log := slog.Default()
	c := NewContract(services.NewBoardService(repositories.NewBoardRepository(db, log), log), log)

	_, err = c.Query(ctx, []byte(`{"get_count":{}}`))
	req.ErrorIs(err, errors.ErrNotInitialized)

	res, err := c.Instantiate(ctx, "creator", []byte(`{"count":0,"messages":[]}`))
	req.NoError(err)
	owner, _ := res.Attribute("owner")
	req.Equal("creator", owner)

	for range 2 {
		res, err = c.Execute(ctx, "anyone", []byte(`{"add_message":{"message":"Hello"}}`))
		req.NoError(err)
		method, _ := res.Attribute("method")
		req.Equal("try_add_message", method)
	}

	count, err := c.Query(ctx, []byte(`{"get_count":{}}`))
	req.NoError(err)
	req.JSONEq(`{"count":2}`, string(count))

	messages, err := c.Query(ctx, []byte(`{"get_messages":{}}`))
	req.NoError(err)
	req.JSONEq(`{"messages":[{"message":"Hello","nickname":""},{"message":"Hello","nickname":""}]}`, string(messages))
}
