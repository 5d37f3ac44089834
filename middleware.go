package sqlcmd

import (
	"context"
)

type QueryContext struct {
	// Type 声明语句类型 即 SELECT, COUNT, UPDATE, DELETE 和 INSERT
	Type string

	// Table 语句操作的表
	Table string

	// Builder 使用的时候, 大多数情况下你需要转换到具体的类型才能篡改语句
	Builder QueryBuilder
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult

type QueryResult struct {
	Query *Query
	Err   error
}
