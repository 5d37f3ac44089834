package sqlcmd

//go:generate mockgen -source=types.go -destination=internal/mocks/query_builder.gen.go -package=mocks QueryBuilder

// QueryBuilder 生成最终的 SQL
type QueryBuilder interface {
	Build() (*Query, error)
}

// Query 是渲染好的 SQL 语句
// 值已经以字面量的形式写进 SQL 里面了, 所以没有参数列表
type Query struct {
	SQL string
}

func (q *Query) String() string {
	return q.SQL
}
