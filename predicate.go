package sqlcmd

// Op 是比较操作符, 原样输出, 不会校验它和值的类型是否匹配
type Op string

const (
	OpEq   Op = "="
	OpNe   Op = "!="
	OpGt   Op = ">"
	OpLt   Op = "<"
	OpGte  Op = ">="
	OpLte  Op = "<="
	OpIn   Op = "IN"
	OpLike Op = "LIKE"
)

func (o Op) String() string {
	return string(o)
}

// Predicate 代表一个查询条件
// C("age") > 18 => age>18
type Predicate struct {
	column string
	op     Op
	value  any
}

func (p Predicate) expr() {}

// Subquery 代表关联子查询条件
// column IN (SELECT otherColumn FROM otherTable WHERE otherColumn=value)
type Subquery struct {
	column      string
	otherTable  string
	otherColumn string
	value       any
}

func (s Subquery) expr() {}
