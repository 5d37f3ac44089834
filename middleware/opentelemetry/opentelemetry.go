package opentelemetry

import (
	"context"
	"fmt"

	"github.com/startdusk/sqlcmd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/startdusk/sqlcmd/middleware/opentelemetry"

type MiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (m MiddlewareBuilder) Build() sqlcmd.Middleware {
	if m.Tracer == nil {
		m.Tracer = otel.GetTracerProvider().Tracer(instrumentationName)
	}
	return func(next sqlcmd.Handler) sqlcmd.Handler {
		return func(ctx context.Context, qc *sqlcmd.QueryContext) *sqlcmd.QueryResult {
			// span name: SELECT-TABLE_NAME
			spanCtx, span := m.Tracer.Start(ctx, fmt.Sprintf("%s-%s", qc.Type, qc.Table))
			defer span.End()

			span.SetAttributes(attribute.String("table", qc.Table))
			span.SetAttributes(attribute.String("component", "sqlcmd"))

			res := next(spanCtx, qc)
			if res.Err != nil {
				span.RecordError(res.Err)
				return res
			}
			// 值已经渲染进 SQL 里面了, 记录之前要确认没有敏感数据
			span.SetAttributes(attribute.String("sql", res.Query.SQL))
			return res
		}
	}
}
