package sqlcmd

import (
	"context"
)

type RendererOption func(r *Renderer)

// Renderer 在 Statement.Build 外面套上一层 Middleware
// 日志, 指标, 链路追踪, DML 检查都在这里接入
type Renderer struct {
	mdls []Middleware
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func WithMiddlewares(mdls ...Middleware) RendererOption {
	return func(r *Renderer) {
		r.mdls = append(r.mdls, mdls...)
	}
}

func (r *Renderer) Render(ctx context.Context, s *Statement) (*Query, error) {
	res := r.render(ctx, &QueryContext{
		Type:    s.Kind().String(),
		Table:   s.Table(),
		Builder: s,
	})
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Query, nil
}

func (r *Renderer) render(ctx context.Context, qc *QueryContext) *QueryResult {
	var root Handler = buildHandler
	// 倒序组装, 第一个 Middleware 在最外层
	for i := len(r.mdls) - 1; i >= 0; i-- {
		root = r.mdls[i](root)
	}
	return root(ctx, qc)
}

func buildHandler(_ context.Context, qc *QueryContext) *QueryResult {
	q, err := qc.Builder.Build()
	return &QueryResult{
		Query: q,
		Err:   err,
	}
}
