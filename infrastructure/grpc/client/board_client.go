package client

import (
	"context"
	"encoding/json"
	"fmt"
	"trashtalk/auth"
	"trashtalk/domain"
	"trashtalk/errors"
	"trashtalk/infrastructure/grpc/board"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// BoardClient speaks the board JSON documents over gRPC.
type BoardClient struct {
	stub   *board.ServiceClient
	token  string
	sender string
}

// NewBoardClient returns a client authenticating with token.
// An empty token sends no authorization header.
func NewBoardClient(cc grpc.ClientConnInterface, token string) *BoardClient {
	return &BoardClient{stub: board.NewServiceClient(cc), token: token}
}

// WithSender returns a copy announcing sender in the x-sender header.
// The server only honours it when authentication is disabled.
func (c *BoardClient) WithSender(sender string) *BoardClient {
	clone := *c
	clone.sender = sender
	return &clone
}

func (c *BoardClient) Instantiate(ctx context.Context, count int32, messages ...string) (domain.Response, error) {
	msg := domain.InstantiateMsg{Count: lo.ToPtr(count), Messages: lo.Ternary(messages == nil, []string{}, messages)}
	var res domain.Response
	err := c.call(ctx, c.stub.Instantiate, msg, &res)
	return res, err
}

func (c *BoardClient) AddMessage(ctx context.Context, message domain.Message) (domain.Response, error) {
	msg := domain.ExecuteMsg{AddMessage: &domain.AddMessage{Message: &message}}
	var res domain.Response
	err := c.call(ctx, c.stub.Execute, msg, &res)
	return res, err
}

func (c *BoardClient) GetCount(ctx context.Context) (domain.CountResponse, error) {
	var res domain.CountResponse
	err := c.call(ctx, c.stub.Query, domain.QueryMsg{GetCount: &domain.GetCount{}}, &res)
	return res, err
}

func (c *BoardClient) GetMessages(ctx context.Context) (domain.MessagesResponse, error) {
	var res domain.MessagesResponse
	err := c.call(ctx, c.stub.Query, domain.QueryMsg{GetMessages: &domain.GetMessages{}}, &res)
	return res, err
}

type invoker func(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

func (c *BoardClient) call(ctx context.Context, invoke invoker, request any, response any) error {
	raw, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	in, err := board.ToStruct(raw)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}
	if c.sender != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, auth.SenderHeader, c.sender)
	}

	out, err := invoke(ctx, in)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	raw, err = board.FromStruct(out)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(raw, response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
