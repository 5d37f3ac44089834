package safedml

import (
	"context"
	"strings"

	"github.com/startdusk/sqlcmd"
	"github.com/startdusk/sqlcmd/internal/errs"
)

// MiddlewareBuilder 强制 UPDATE, DELETE 必须带 WHERE
// SELECT 和 COUNT 要不要带自己抉择, 这里放行
type MiddlewareBuilder struct {
}

func NewMiddlewareBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

func (m MiddlewareBuilder) Build() sqlcmd.Middleware {
	return func(next sqlcmd.Handler) sqlcmd.Handler {
		return func(ctx context.Context, qc *sqlcmd.QueryContext) *sqlcmd.QueryResult {
			if qc.Type != sqlcmd.KindUpdate.String() && qc.Type != sqlcmd.KindDelete.String() {
				return next(ctx, qc)
			}
			// 能拿到 Statement 就直接看有没有设置条件, 不用先渲染
			if st, ok := qc.Builder.(*sqlcmd.Statement); ok {
				if !st.HasWhere() {
					return &sqlcmd.QueryResult{
						Err: errs.NewErrUnsafeDML(qc.Type),
					}
				}
				return next(ctx, qc)
			}
			res := next(ctx, qc)
			if res.Err != nil {
				return res
			}
			// WHERE () 是空的 Group, 等于没有条件
			if !strings.Contains(res.Query.SQL, " WHERE ") || strings.Contains(res.Query.SQL, " WHERE ()") {
				return &sqlcmd.QueryResult{
					Err: errs.NewErrUnsafeDML(qc.Type),
				}
			}
			return res
		}
	}
}
