// Package actorctx carries the authenticated operator and the request id
// through request contexts so layers below the http handlers can attribute
// writes and log lines.
package actorctx

import "context"

type (
	actorKey     struct{}
	requestIDKey struct{}
)

func WithActor(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, actorKey{}, subject)
}

func ActorFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(actorKey{}).(string)

	return v, ok && v != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDKey{}).(string)

	return v, ok && v != ""
}
