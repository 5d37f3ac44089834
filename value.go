package sqlcmd

import (
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/startdusk/sqlcmd/internal/errs"
)

// List 是 IN 操作符右侧的值列表, 渲染为 (v1, v2, ...)
type List []any

// In 构造一个值列表
// Select("user").Where("id", OpIn, In(1, 2, 3)) => SELECT * FROM user WHERE (idIN(1, 2, 3));
func In(vals ...any) List {
	return List(vals)
}

var quoteReplacer = strings.NewReplacer(`'`, `\'`, `"`, `\"`)

// Escape 把值转成可以直接拼接进 SQL 的字面量
// 注意: 这里只转义了单引号和双引号, 并不能防御所有的注入手段(如反斜杠)
// 不要把用户的原始输入直接交给它
func Escape(val any) (string, error) {
	var b builder
	if err := b.buildValue(val); err != nil {
		return "", err
	}
	return b.sb.String(), nil
}

// buildValue 按值的类型写入字面量
func (b *builder) buildValue(val any) error {
	switch v := val.(type) {
	case nil:
		b.sb.WriteString("NULL")
	case bool:
		b.sb.WriteString(strconv.FormatBool(v))
	case int:
		b.sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		b.sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		b.sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		b.sb.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		b.sb.WriteString(strconv.FormatInt(v, 10))
	case uint:
		b.sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		b.sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		b.sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		b.sb.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		b.sb.WriteString(strconv.FormatUint(v, 10))
	case float32:
		return b.buildFloat(float64(v), 32)
	case float64:
		return b.buildFloat(v, 64)
	case string:
		b.sb.WriteByte('\'')
		b.sb.WriteString(quoteReplacer.Replace(v))
		b.sb.WriteByte('\'')
	case []byte:
		b.sb.WriteByte('\'')
		b.sb.WriteString(hex.EncodeToString(v))
		b.sb.WriteByte('\'')
	case List:
		b.sb.WriteByte('(')
		for i, item := range v {
			if i > 0 {
				b.sb.WriteString(", ")
			}
			if err := b.buildValue(item); err != nil {
				return err
			}
		}
		b.sb.WriteByte(')')
	case driver.Valuer:
		// sql.NullString, uuid.UUID 之类的类型, 先取出驱动值再处理
		// 值为 nil 的指针调用 Value 会 panic, 和 database/sql 一样当成 NULL
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			b.sb.WriteString("NULL")
			return nil
		}
		dv, err := v.Value()
		if err != nil {
			return errs.NewErrEncodingFailure(val, err)
		}
		if _, ok := dv.(driver.Valuer); ok {
			return errs.NewErrEncodingFailure(val, errors.New("不支持嵌套的 driver.Valuer"))
		}
		if _, ok := dv.(List); ok {
			return errs.NewErrEncodingFailure(val, errors.New("driver.Valuer 不能返回 List"))
		}
		if err := b.buildValue(dv); err != nil {
			if errors.Is(err, errs.ErrUnsupportedValue) {
				return errs.NewErrEncodingFailure(val, err)
			}
			return err
		}
	default:
		return errs.NewErrUnsupportedValue(val)
	}
	return nil
}

func (b *builder) buildFloat(f float64, bitSize int) error {
	// NaN 和 Inf 没有对应的 SQL 字面量
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errs.NewErrEncodingFailure(f, errors.New("非有限浮点数"))
	}
	b.sb.WriteString(strconv.FormatFloat(f, 'f', -1, bitSize))
	return nil
}
