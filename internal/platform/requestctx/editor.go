package requestctx

import "context"

// editorContextKey is the context key for the authenticated editor identity.
type editorContextKey struct{}

// WithEditor stores an editor identifier in context.
func WithEditor(ctx context.Context, editorID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, editorContextKey{}, editorID)
}

// EditorFromContext returns the editor identifier stored in context.
func EditorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(editorContextKey{}).(string)
	return value
}
