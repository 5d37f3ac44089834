package nodelete

import (
	"context"

	"github.com/startdusk/sqlcmd"
	"github.com/startdusk/sqlcmd/internal/errs"
)

type MiddlewareBuilder struct {
}

func NewMiddlewareBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

func (m MiddlewareBuilder) Build() sqlcmd.Middleware {
	return func(next sqlcmd.Handler) sqlcmd.Handler {
		return func(ctx context.Context, qc *sqlcmd.QueryContext) *sqlcmd.QueryResult {
			// 禁用 DELETE 语句, 不调用 next 也就不会渲染
			if qc.Type == sqlcmd.KindDelete.String() {
				return &sqlcmd.QueryResult{
					Err: errs.ErrDeleteForbidden,
				}
			}
			return next(ctx, qc)
		}
	}
}
