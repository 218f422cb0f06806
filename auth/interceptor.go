package auth

import (
	"context"
	"strings"
	"trashtalk/domain"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	SenderKey contextKey = "sender"

	// SenderHeader names the caller when authentication is disabled.
	SenderHeader = "x-sender"
	// AnonymousSender is used when authentication is disabled and no header is sent.
	AnonymousSender domain.Owner = "anonymous"
)

// Interceptor resolves the caller identity of every unary call and stores it in the context.
// With enabled set, a valid "Bearer <jwt>" is required except for publicMethods.
// Without it, the identity is read from the x-sender header.
func Interceptor(secret []byte, enabled bool, publicMethods ...string) grpc.UnaryServerInterceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, method := range publicMethods {
		public[method] = struct{}{}
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)

		if !enabled {
			sender := AnonymousSender
			if values := md.Get(SenderHeader); len(values) > 0 && values[0] != "" {
				if err := ValidateSender(values[0]); err != nil {
					return nil, status.Error(codes.Unauthenticated, "invalid sender header")
				}
				sender = domain.Owner(values[0])
			}
			return handler(WithSender(ctx, sender), req)
		}

		if _, ok := public[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
		}
		tokenStr := strings.TrimPrefix(values[0], "Bearer ")

		claims, err := ValidateToken(secret, tokenStr)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}
		return handler(WithSender(ctx, domain.Owner(claims.Sender)), req)
	}
}

func WithSender(ctx context.Context, sender domain.Owner) context.Context {
	return context.WithValue(ctx, SenderKey, sender)
}

// SenderFromContext returns the identity injected by Interceptor.
func SenderFromContext(ctx context.Context) (domain.Owner, bool) {
	sender, ok := ctx.Value(SenderKey).(domain.Owner)
	return sender, ok && sender != ""
}
