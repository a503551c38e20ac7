package logging

import "context"

type ctxKey struct{}

// ContextWith returns a child of ctx carrying key/value pairs that every
// backend adds to records logged with it, e.g. the browser profile of a
// request.
func ContextWith(ctx context.Context, args ...any) context.Context {
	prev := fromContext(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

func fromContext(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	args, _ := ctx.Value(ctxKey{}).([]any)
	return args
}

// withContext prepends the pairs stored in ctx to args.
func withContext(ctx context.Context, args []any) []any {
	stored := fromContext(ctx)
	if len(stored) == 0 {
		return args
	}
	return append(append(make([]any, 0, len(stored)+len(args)), stored...), args...)
}
