// Package contract exposes the board through raw JSON entry points.
// Requests are decoded strictly and validated before any handler runs.
package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"trashtalk/domain"
	"trashtalk/errors"
	"trashtalk/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Contract struct {
	service services.IBoardService
	log     *slog.Logger
}

func NewContract(service services.IBoardService, log *slog.Logger) *Contract {
	return &Contract{service: service, log: log}
}

// Instantiate decodes {"count": N, "messages": [...]} and creates the board.
func (c *Contract) Instantiate(ctx context.Context, sender domain.Owner, raw []byte) (domain.Response, error) {
	var msg domain.InstantiateMsg
	if err := decode(raw, &msg); err != nil {
		return domain.Response{}, err
	}
	return c.service.Instantiate(ctx, sender, msg)
}

// Execute decodes one command variant and dispatches it.
func (c *Contract) Execute(ctx context.Context, sender domain.Owner, raw []byte) (domain.Response, error) {
	var msg domain.ExecuteMsg
	if err := decode(raw, &msg); err != nil {
		return domain.Response{}, err
	}
	switch {
	case msg.AddMessage != nil:
		return c.service.AddMessage(ctx, sender, *msg.AddMessage.Message)
	default:
		return domain.Response{}, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, errors.ErrUnknownVariant)
	}
}

// Query decodes one query variant and returns its JSON encoded answer.
func (c *Contract) Query(ctx context.Context, raw []byte) ([]byte, error) {
	var msg domain.QueryMsg
	if err := decode(raw, &msg); err != nil {
		return nil, err
	}
	if msg.GetCount != nil && msg.GetMessages != nil {
		return nil, fmt.Errorf("%w: expected exactly one query", errors.ErrInvalidRequest)
	}

	var (
		res any
		err error
	)
	switch {
	case msg.GetCount != nil:
		res, err = c.service.GetCount(ctx)
	case msg.GetMessages != nil:
		res, err = c.service.GetMessages(ctx)
	default:
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidRequest, errors.ErrUnknownVariant)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}

func decode(raw []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after request", errors.ErrInvalidRequest)
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidRequest, err)
	}
	return nil
}
