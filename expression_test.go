package sqlcmd

import (
	"testing"

	"github.com/startdusk/sqlcmd/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestGroup_Render(t *testing.T) {
	cases := []struct {
		name    string
		group   *Group
		wantRes string
		wantErr error
	}{
		{
			name:    "empty and",
			group:   And(),
			wantRes: "()",
		},
		{
			name:    "empty or",
			group:   Or(),
			wantRes: "()",
		},
		{
			name:    "single member",
			group:   Or().Where("a", OpEq, 1),
			wantRes: "(a=1)",
		},
		{
			name:    "and",
			group:   And().Where("a", OpEq, 1).Where("b", OpNe, 2).Where("c", OpGt, 3),
			wantRes: "(a=1 AND b!=2 AND c>3)",
		},
		{
			name:    "or",
			group:   Or().Where("a", OpLt, 1).Where("b", OpGte, 2),
			wantRes: "(a<1 OR b>=2)",
		},
		{
			name:    "nested",
			group:   And().Where("a", OpEq, 1).WhereThese(Or().Where("b", OpEq, 2).Where("c", OpEq, 3)),
			wantRes: "(a=1 AND (b=2 OR c=3))",
		},
		{
			name:    "nested empty",
			group:   And().WhereThese(Or()),
			wantRes: "(())",
		},
		{
			name:    "deeply nested",
			group:   Or().WhereThese(And().WhereThese(Or().WhereThese(And().Where("a", OpEq, 1)))),
			wantRes: "((((a=1))))",
		},
		{
			name:    "like",
			group:   And().Where("name", OpLike, "El%"),
			wantRes: "(nameLIKE'El%')",
		},
		{
			name:    "like number accepted",
			group:   And().Where("age", OpLike, 2),
			wantRes: "(ageLIKE2)",
		},
		{
			name:    "in list",
			group:   And().Where("id", OpIn, In(1, 2, 3)),
			wantRes: "(idIN(1, 2, 3))",
		},
		{
			name:    "subquery only",
			group:   And().WhereKeyIsValueOfQuery("id", "tab2", "id", "XXX"),
			wantRes: "(id IN (SELECT id FROM tab2 WHERE id='XXX'))",
		},
		{
			name: "subquery first",
			group: Or().
				WhereKeyIsValueOfQuery("id", "tab2", "uid", 1).
				Where("name", OpEq, "x"),
			wantRes: "(id IN (SELECT uid FROM tab2 WHERE uid=1) OR name='x')",
		},
		{
			name:    "subquery escapes",
			group:   And().WhereKeyIsValueOfQuery("id", "tab2", "name", "O'Brien"),
			wantRes: `(id IN (SELECT name FROM tab2 WHERE name='O\'Brien'))`,
		},
		{
			name:    "predicate escapes",
			group:   And().Where("name", OpEq, `O'Brien "Jr"`),
			wantRes: `(name='O\'Brien \"Jr\"')`,
		},
		{
			name:    "null",
			group:   And().Where("deleted_at", OpEq, nil),
			wantRes: "(deleted_at=NULL)",
		},
		{
			name:    "invalid value",
			group:   And().Where("a", OpEq, 1).Where("b", OpEq, struct{}{}),
			wantErr: errs.ErrUnsupportedValue,
		},
		{
			name:    "invalid subquery value",
			group:   And().WhereKeyIsValueOfQuery("a", "b", "c", []string{}),
			wantErr: errs.ErrUnsupportedValue,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := c.group.Render()
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				assert.Empty(t, res)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.wantRes, res)
		})
	}
}

func TestGroup_MembersKeepOrder(t *testing.T) {
	inner := Or().Where("b", OpEq, 2)
	g := And().Where("a", OpEq, 1).WhereThese(inner)
	// 子表达式加入之后继续修改, 渲染时以最新的状态为准
	inner.Where("c", OpEq, 3)
	res, err := g.Render()
	assert.NoError(t, err)
	assert.Equal(t, "(a=1 AND (b=2 OR c=3))", res)
}
