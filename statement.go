package sqlcmd

import (
	"strconv"

	"github.com/startdusk/sqlcmd/internal/errs"
)

// Kind 语句类型
type Kind string

const (
	KindSelect Kind = "SELECT"
	KindCount  Kind = "COUNT"
	KindInsert Kind = "INSERT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
)

func (k Kind) String() string {
	return string(k)
}

// Direction 排序方向
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

type Ordering struct {
	Column    string
	Direction Direction
}

type assignment struct {
	col string
	val any
}

var _ QueryBuilder = &Statement{}

// Statement 是 SELECT, COUNT, INSERT, UPDATE 和 DELETE 语句的构造器
// 它不是线程安全的, 构造完成之后可以并发调用 Build
type Statement struct {
	kind      Kind
	table     string
	orderings []Ordering

	limit    int
	hasLimit bool

	// Set 的列, 保持第一次插入的顺序
	assigns []assignment
	// 列名 => assigns 的下标
	assignIdx map[string]int

	where Expression

	// Values 解析结构体出错时记录下来, Build 的时候返回
	err error
}

func newStatement(kind Kind, table string) *Statement {
	return &Statement{
		kind:  kind,
		table: table,
	}
}

func Select(table string) *Statement {
	return newStatement(KindSelect, table)
}

// Count SELECT COUNT(*) FROM table
func Count(table string) *Statement {
	return newStatement(KindCount, table)
}

func Insert(table string) *Statement {
	return newStatement(KindInsert, table)
}

func Update(table string) *Statement {
	return newStatement(KindUpdate, table)
}

func Delete(table string) *Statement {
	return newStatement(KindDelete, table)
}

// From 指定表名
// 这里是用户传进来的表名, 用户应该保证它的正确性, 我们不处理引号的问题
func (s *Statement) From(table string) *Statement {
	s.table = table
	return s
}

// Into 同 From, INSERT 语句读起来更顺
func (s *Statement) Into(table string) *Statement {
	return s.From(table)
}

// In 同 From, UPDATE 语句读起来更顺
func (s *Statement) In(table string) *Statement {
	return s.From(table)
}

// Sort 追加排序列, 不去重
func (s *Statement) Sort(column string, dir Direction) *Statement {
	s.orderings = append(s.orderings, Ordering{
		Column:    column,
		Direction: dir,
	})
	return s
}

// Limit 覆盖之前的 Limit
func (s *Statement) Limit(n int) *Statement {
	s.limit = n
	s.hasLimit = true
	return s
}

// Set 指定 INSERT 或 UPDATE 的列, 同一个列以最后一次为准
func (s *Statement) Set(column string, val any) *Statement {
	if idx, ok := s.assignIdx[column]; ok {
		s.assigns[idx].val = val
		return s
	}
	if s.assignIdx == nil {
		s.assignIdx = make(map[string]int, 8)
	}
	s.assignIdx[column] = len(s.assigns)
	s.assigns = append(s.assigns, assignment{col: column, val: val})
	return s
}

// Where 用单个条件作为 WHERE, 会覆盖之前的条件
// Select("tab").Where("key", OpLte, 10) => SELECT * FROM tab WHERE (key<=10);
func (s *Statement) Where(column string, op Op, val any) *Statement {
	s.where = And().Where(column, op, val)
	return s
}

// WhereThese 用 expr 作为 WHERE, 会覆盖之前的条件
func (s *Statement) WhereThese(expr Expression) *Statement {
	s.where = expr
	return s
}

// WhereKeyIsValueOfQuery 用关联子查询作为 WHERE, 会覆盖之前的条件
func (s *Statement) WhereKeyIsValueOfQuery(column, otherTable, otherColumn string, val any) *Statement {
	s.where = And().WhereKeyIsValueOfQuery(column, otherTable, otherColumn, val)
	return s
}

func (s *Statement) Kind() Kind {
	return s.kind
}

func (s *Statement) Table() string {
	return s.table
}

// HasWhere 是否设置了 WHERE 条件
// 根节点是没有成员的 Group 时只会渲染出 WHERE (), 不算过滤条件
func (s *Statement) HasWhere() bool {
	if g, ok := s.where.(*Group); ok {
		return g != nil && len(g.members) > 0
	}
	return s.where != nil
}

func (s *Statement) Build() (*Query, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.table == "" {
		return nil, errs.ErrMissingTable
	}

	var b builder
	var err error
	switch s.kind {
	case KindSelect, KindCount:
		err = s.buildSelect(&b)
	case KindInsert:
		err = s.buildInsert(&b)
	case KindUpdate:
		err = s.buildUpdate(&b)
	case KindDelete:
		b.sb.WriteString("DELETE FROM ")
		b.sb.WriteString(s.table)
		err = s.buildWhere(&b)
	default:
		return nil, errs.NewErrUnsupportedKind(s.kind)
	}
	if err != nil {
		return nil, err
	}

	b.sb.WriteByte(';')
	return &Query{
		SQL: b.sb.String(),
	}, nil
}

func (s *Statement) buildSelect(b *builder) error {
	if s.kind == KindCount {
		b.sb.WriteString("SELECT COUNT(*) FROM ")
	} else {
		b.sb.WriteString("SELECT * FROM ")
	}
	b.sb.WriteString(s.table)

	if err := s.buildWhere(b); err != nil {
		return err
	}

	if len(s.orderings) > 0 {
		b.sb.WriteString(" ORDER BY ")
		for i, o := range s.orderings {
			if i > 0 {
				b.sb.WriteString(", ")
			}
			b.sb.WriteString(o.Column)
			b.sb.WriteByte(' ')
			if o.Direction == DESC {
				b.sb.WriteString("DESC")
			} else {
				b.sb.WriteString("ASC")
			}
		}
	}

	if s.hasLimit {
		b.sb.WriteString(" LIMIT ")
		b.sb.WriteString(strconv.Itoa(s.limit))
	}
	return nil
}

func (s *Statement) buildInsert(b *builder) error {
	if len(s.assigns) == 0 {
		return errs.ErrEmptyInsert
	}
	b.sb.WriteString("INSERT INTO ")
	b.sb.WriteString(s.table)
	// INSERT 带 WHERE 不是标准 SQL, 这里照样输出
	if err := s.buildWhere(b); err != nil {
		return err
	}

	cols := make([]string, 0, len(s.assigns))
	for _, a := range s.assigns {
		cols = append(cols, a.col)
	}
	b.sb.WriteString(" (")
	b.buildColumns(cols)
	b.sb.WriteString(") VALUES (")
	for i, a := range s.assigns {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		if err := b.buildValue(a.val); err != nil {
			return err
		}
	}
	b.sb.WriteByte(')')
	return nil
}

func (s *Statement) buildUpdate(b *builder) error {
	if len(s.assigns) == 0 {
		return errs.ErrEmptyUpdate
	}
	b.sb.WriteString("UPDATE ")
	b.sb.WriteString(s.table)
	b.sb.WriteString(" SET ")
	for i, a := range s.assigns {
		if i > 0 {
			b.sb.WriteString(", ")
		}
		b.sb.WriteString(a.col)
		b.sb.WriteByte('=')
		if err := b.buildValue(a.val); err != nil {
			return err
		}
	}
	return s.buildWhere(b)
}

func (s *Statement) buildWhere(b *builder) error {
	if s.where == nil {
		return nil
	}
	b.sb.WriteString(" WHERE ")
	return b.buildExpression(s.where)
}
