package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs one record per RPC. Handler errors carrying a
// Connect code are logged at WARN, any other error at ERROR.
// Register it after Authenticate so the record has the caller's user ID.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("user_id", GetUserID(ctx)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			level, msg := slog.LevelInfo, "RPC ok"
			if err != nil {
				msg = "RPC error"
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					level = slog.LevelWarn
					attrs = append(attrs,
						slog.String("code", connectErr.Code().String()),
						slog.String("error", connectErr.Message()),
					)
				} else {
					level = slog.LevelError
					attrs = append(attrs, slog.Any("error", err))
				}
			}
			slog.LogAttrs(ctx, level, msg, attrs...)

			return resp, err
		}
	}
}
