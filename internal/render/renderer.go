package render

import "context"

type Renderer interface {
	RenderList(ctx context.Context, page ListPage) ([]byte, error)
	RenderPost(ctx context.Context, page PostPage) ([]byte, error)
	RenderTag(ctx context.Context, page TagPage) ([]byte, error)
}
