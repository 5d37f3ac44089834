package querylog

import (
	"context"

	"github.com/startdusk/sqlcmd"
	"go.uber.org/zap"
)

type MiddlewareBuilder struct {
	// 值已经渲染进 SQL 里面了, 敏感数据会一起被打印出来
	// 线上环境要慎重打开
	logFunc func(typ string, query string)
}

// NewMiddlewareBuilder 默认使用 zap 的全局 Logger 输出 Debug 日志
func NewMiddlewareBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

// Logger 指定 zap.Logger
func (m *MiddlewareBuilder) Logger(l *zap.Logger) *MiddlewareBuilder {
	m.logFunc = func(typ string, query string) {
		l.Debug("sqlcmd: query", zap.String("type", typ), zap.String("sql", query))
	}
	return m
}

// LogFunc 自定义日志输出
func (m *MiddlewareBuilder) LogFunc(fn func(typ string, query string)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

func (m MiddlewareBuilder) Build() sqlcmd.Middleware {
	logFunc := m.logFunc
	if logFunc == nil {
		logFunc = func(typ string, query string) {
			zap.L().Debug("sqlcmd: query", zap.String("type", typ), zap.String("sql", query))
		}
	}
	return func(next sqlcmd.Handler) sqlcmd.Handler {
		return func(ctx context.Context, qc *sqlcmd.QueryContext) *sqlcmd.QueryResult {
			res := next(ctx, qc)
			if res.Err == nil && res.Query != nil {
				logFunc(qc.Type, res.Query.SQL)
			}
			return res
		}
	}
}
