package sqlcmd

// Expression 是一个标记接口, 代表表达式
// 只有 Predicate, Subquery 和 *Group 实现了它
type Expression interface {
	expr()
}

type condition string

const (
	condAnd condition = "AND"
	condOr  condition = "OR"
)

// Group 是一组用 AND 或者 OR 连接起来的表达式
// 成员按照加入的顺序输出, 整个 Group 外面包一层括号
//
//	And().Where("age", OpGt, 18).WhereThese(Or().Where("a", OpEq, 1).Where("b", OpEq, 2))
//	=> (age>18 AND (a=1 OR b=2))
type Group struct {
	cond    condition
	members []Expression
}

func (g *Group) expr() {}

func And() *Group {
	return &Group{cond: condAnd}
}

func Or() *Group {
	return &Group{cond: condOr}
}

// Where 追加一个 column op value 条件
func (g *Group) Where(column string, op Op, val any) *Group {
	g.members = append(g.members, Predicate{
		column: column,
		op:     op,
		value:  val,
	})
	return g
}

// WhereThese 追加一个子表达式, 用于嵌套
func (g *Group) WhereThese(expr Expression) *Group {
	g.members = append(g.members, expr)
	return g
}

// WhereKeyIsValueOfQuery 追加一个关联子查询条件
func (g *Group) WhereKeyIsValueOfQuery(column, otherTable, otherColumn string, val any) *Group {
	g.members = append(g.members, Subquery{
		column:      column,
		otherTable:  otherTable,
		otherColumn: otherColumn,
		value:       val,
	})
	return g
}

// Render 单独渲染表达式, 方便调试
func (g *Group) Render() (string, error) {
	var b builder
	if err := b.buildExpression(g); err != nil {
		return "", err
	}
	return b.sb.String(), nil
}
