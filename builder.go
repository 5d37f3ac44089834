package sqlcmd

import (
	"strings"

	"github.com/startdusk/sqlcmd/internal/errs"
)

// builder 每次 Build 都新建一个, 所以 Build 不会修改 Statement 本身
type builder struct {
	sb strings.Builder
}

func (b *builder) buildExpression(expr Expression) error {
	switch exp := expr.(type) {
	case Predicate:
		// 操作符原样拼接, 两侧不加空格
		b.sb.WriteString(exp.column)
		b.sb.WriteString(exp.op.String())
		return b.buildValue(exp.value)
	case Subquery:
		b.sb.WriteString(exp.column)
		b.sb.WriteString(" IN (SELECT ")
		b.sb.WriteString(exp.otherColumn)
		b.sb.WriteString(" FROM ")
		b.sb.WriteString(exp.otherTable)
		b.sb.WriteString(" WHERE ")
		b.sb.WriteString(exp.otherColumn)
		b.sb.WriteByte('=')
		if err := b.buildValue(exp.value); err != nil {
			return err
		}
		// 子查询自己闭合括号, 不依赖外层 Group
		b.sb.WriteByte(')')
	case *Group:
		if exp == nil {
			return errs.NewErrUnsupportedExpressionType(expr)
		}
		b.sb.WriteByte('(')
		for i, m := range exp.members {
			if i > 0 {
				b.sb.WriteByte(' ')
				b.sb.WriteString(string(exp.cond))
				b.sb.WriteByte(' ')
			}
			if err := b.buildExpression(m); err != nil {
				return err
			}
		}
		b.sb.WriteByte(')')
	default:
		return errs.NewErrUnsupportedExpressionType(expr)
	}
	return nil
}

// buildColumns 用 ", " 连接列名
func (b *builder) buildColumns(cols []string) {
	for i, col := range cols {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(col)
	}
}
