//go:generate go run go.uber.org/mock/mockgen -source=board_service.go -destination=../mocks/mock_board_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
	"trashtalk/domain"
	"trashtalk/domain/event"
	"trashtalk/errors"
	"trashtalk/repositories"
	"trashtalk/sink"
)

type IBoardService interface {
	Instantiate(ctx context.Context, sender domain.Owner, msg domain.InstantiateMsg) (domain.Response, error)
	AddMessage(ctx context.Context, sender domain.Owner, message domain.Message) (domain.Response, error)
	GetCount(ctx context.Context) (domain.CountResponse, error)
	GetMessages(ctx context.Context) (domain.MessagesResponse, error)
}

type BoardService struct {
	repository repositories.IBoardRepository
	log        *slog.Logger
	sinks      []sink.EventSink
}

// NewBoardService wires the repository and the sinks notified after each committed command.
func NewBoardService(repository repositories.IBoardRepository, log *slog.Logger, sinks ...sink.EventSink) *BoardService {
	return &BoardService{repository: repository, log: log, sinks: sinks}
}

// Instantiate creates the board with an empty message list.
// Initial messages carried by msg are dropped.
func (s *BoardService) Instantiate(ctx context.Context, sender domain.Owner, msg domain.InstantiateMsg) (domain.Response, error) {
	if sender == "" {
		return domain.Response{}, errors.ErrMissingSender
	}
	if msg.Count == nil {
		return domain.Response{}, fmt.Errorf("%w: count is required", errors.ErrInvalidRequest)
	}
	if len(msg.Messages) > 0 {
		s.log.DebugContext(ctx, "Ignoring initial messages", "dropped", len(msg.Messages))
	}

	state := domain.NewBoardState(*msg.Count, sender)
	if err := s.repository.Create(state, domain.CurrentContractInfo()); err != nil {
		return domain.Response{}, err
	}
	s.log.InfoContext(ctx, "Board instantiated", "owner", sender, "count", state.Count)
	s.publish(ctx, event.BoardInstantiated{Owner: sender, Count: state.Count, At: time.Now().UTC()})

	return domain.NewResponse().
		AddAttribute("method", domain.MethodInstantiate).
		AddAttribute("owner", string(sender)).
		AddAttribute("count", strconv.FormatInt(int64(state.Count), 10)), nil
}

// AddMessage appends a message and increments the count.
// Any sender may post: the owner is not consulted.
func (s *BoardService) AddMessage(ctx context.Context, sender domain.Owner, message domain.Message) (domain.Response, error) {
	state, err := s.repository.Update(func(current domain.BoardState) (domain.BoardState, error) {
		return current.AppendMessage(message)
	})
	if err != nil {
		return domain.Response{}, notInitialized(err)
	}
	s.log.DebugContext(ctx, "Message added", "sender", sender, "count", state.Count)
	s.publish(ctx, event.MessageAdded{Sender: sender, Message: message, Count: state.Count, At: time.Now().UTC()})

	return domain.NewResponse().AddAttribute("method", domain.MethodTryAddMessage), nil
}

func (s *BoardService) GetCount(_ context.Context) (domain.CountResponse, error) {
	state, err := s.repository.Load()
	if err != nil {
		return domain.CountResponse{}, notInitialized(err)
	}
	return domain.CountResponse{Count: state.Count}, nil
}

func (s *BoardService) GetMessages(_ context.Context) (domain.MessagesResponse, error) {
	state, err := s.repository.Load()
	if err != nil {
		return domain.MessagesResponse{}, notInitialized(err)
	}
	messages := state.Messages
	if messages == nil {
		messages = []domain.Message{}
	}
	return domain.MessagesResponse{Messages: messages}, nil
}

// publish runs after the commit, so a failing sink is logged and never fails the command.
func (s *BoardService) publish(ctx context.Context, e event.DomainEvent) {
	for _, consumer := range s.sinks {
		if err := consumer.Consume(ctx, e); err != nil {
			s.log.WarnContext(ctx, "Event sink failed", "method", e.Method(), "error", err)
		}
	}
}

func notInitialized(err error) error {
	if errors.Is(err, errors.ErrNotFound) {
		return fmt.Errorf("%w: %w", errors.ErrNotInitialized, err)
	}
	return err
}
