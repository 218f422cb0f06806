package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"trashtalk/auth"
	"trashtalk/contract"
	"trashtalk/domain"
	"trashtalk/errors"
	"trashtalk/infrastructure/grpc/board"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// PublicMethods can be called without a token.
var PublicMethods = []string{board.QueryFullMethodName}

type BoardServer struct {
	contract *contract.Contract
	log      *slog.Logger
}

func NewBoardServer(c *contract.Contract, log *slog.Logger) *BoardServer {
	return &BoardServer{contract: c, log: log}
}

// Instantiate creates the board on behalf of the caller resolved by the auth interceptor.
func (s *BoardServer) Instantiate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	sender, raw, err := s.request(ctx, in)
	if err != nil {
		return nil, err
	}
	res, err := s.contract.Instantiate(ctx, sender, raw)
	if err != nil {
		return nil, s.fail(ctx, "instantiate", err)
	}
	return toResponse(res)
}

// Execute runs one command. Any authenticated caller may post.
func (s *BoardServer) Execute(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	sender, raw, err := s.request(ctx, in)
	if err != nil {
		return nil, err
	}
	res, err := s.contract.Execute(ctx, sender, raw)
	if err != nil {
		return nil, s.fail(ctx, "execute", err)
	}
	return toResponse(res)
}

func (s *BoardServer) Query(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	raw, err := board.FromStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	res, err := s.contract.Query(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, "query", err)
	}
	out, err := board.ToStruct(res)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *BoardServer) request(ctx context.Context, in *structpb.Struct) (domain.Owner, []byte, error) {
	sender, ok := auth.SenderFromContext(ctx)
	if !ok {
		return "", nil, errors.MapToGRPCError(errors.ErrMissingSender)
	}
	raw, err := board.FromStruct(in)
	if err != nil {
		return "", nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return sender, raw, nil
}

func (s *BoardServer) fail(ctx context.Context, operation string, err error) error {
	mapped := errors.MapToGRPCError(err)
	if status.Code(mapped) == codes.Internal {
		s.log.ErrorContext(ctx, "Board operation failed", "operation", operation, "error", err)
	} else {
		s.log.DebugContext(ctx, "Board operation rejected", "operation", operation, "error", err)
	}
	return mapped
}

func toResponse(res domain.Response) (*structpb.Struct, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out, err := board.ToStruct(raw)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
