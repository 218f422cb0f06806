package errors

import (
	goerrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return goerrors.Is(err, target)
}

// MapToGRPCError converts a domain error into a gRPC status error.
// Errors that already carry a status are returned as is.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case Is(err, ErrInvalidRequest), Is(err, ErrUnknownVariant):
		return status.Error(codes.InvalidArgument, err.Error())
	case Is(err, ErrNotInitialized), Is(err, ErrNotFound):
		return status.Error(codes.FailedPrecondition, err.Error())
	case Is(err, ErrAlreadyInitialized):
		return status.Error(codes.AlreadyExists, err.Error())
	case Is(err, ErrCountOverflow):
		return status.Error(codes.OutOfRange, err.Error())
	case Is(err, ErrMissingSender):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// FromGRPCError restores the domain sentinel behind a status returned by the board server.
func FromGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return err
	}
	var sentinel error
	switch st.Code() {
	case codes.InvalidArgument:
		sentinel = ErrInvalidRequest
	case codes.FailedPrecondition:
		sentinel = ErrNotInitialized
	case codes.AlreadyExists:
		sentinel = ErrAlreadyInitialized
	case codes.OutOfRange:
		sentinel = ErrCountOverflow
	case codes.Unauthenticated:
		sentinel = ErrMissingSender
	default:
		return err
	}
	return goerrors.Join(sentinel, err)
}
