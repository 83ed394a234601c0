// Package middleware holds the unary interceptors of the admin gRPC server.
package middleware

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/murkotick/b2b-catalog-service/internal/pkg/auth"
)

// AdminAuth requires a valid bearer token with the admin role on every call
// except the listed public methods (health checks).
func AdminAuth(v *auth.Verifier, publicPrefixes ...string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		for _, p := range publicPrefixes {
			if strings.HasPrefix(info.FullMethod, p) {
				return handler(ctx, req)
			}
		}

		md, _ := metadata.FromIncomingContext(ctx)
		var header string
		if vals := md.Get("authorization"); len(vals) > 0 {
			header = vals[0]
		}
		token, err := auth.FromHeader(header)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		claims, err := v.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, auth.ErrInvalidToken.Error())
		}
		if !claims.IsAdmin() {
			return nil, status.Error(codes.PermissionDenied, auth.ErrForbidden.Error())
		}
		return handler(ctx, req)
	}
}

// Logging logs every call with its status code and latency.
func Logging(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("latency", time.Since(start)),
		}

		switch code {
		case codes.OK:
			logger.Info("grpc request", fields...)
		case codes.Internal, codes.Unknown, codes.DataLoss:
			logger.Error("grpc request", append(fields, zap.Error(err))...)
		default:
			logger.Warn("grpc request", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}
