package errs

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTable          = errors.New("sqlcmd: 未指定表名, 请使用 From, Into 或 In")
	ErrEmptyInsert           = errors.New("sqlcmd: INSERT 至少需要一个列")
	ErrEmptyUpdate           = errors.New("sqlcmd: UPDATE 至少需要一个列")
	ErrEncodingFailure       = errors.New("sqlcmd: 值编码失败")
	ErrUnsupportedValue      = errors.New("sqlcmd: 不支持的值类型")
	ErrUnsupportedExpression = errors.New("sqlcmd: 不支持的表达式")
	ErrUnsupportedKind       = errors.New("sqlcmd: 不支持的语句类型")
	ErrUnsafeDML             = errors.New("sqlcmd: 禁止执行没有 WHERE 的语句")
	ErrDeleteForbidden       = errors.New("sqlcmd: 禁止使用 DELETE 语句")
	ErrPointerOnly           = errors.New("sqlcmd: 只支持指向结构体的一级指针")
	ErrNilEntity             = errors.New("sqlcmd: 结构体指针不能为 nil")
	ErrInvalidTagContent     = errors.New("sqlcmd: 非法标签值")
)

func NewErrUnsupportedValue(val any) error {
	return fmt.Errorf("%w %T", ErrUnsupportedValue, val)
}

func NewErrUnsupportedExpressionType(expr any) error {
	return fmt.Errorf("%w %v", ErrUnsupportedExpression, expr)
}

func NewErrUnsupportedKind(kind any) error {
	return fmt.Errorf("%w %q", ErrUnsupportedKind, kind)
}

// NewErrEncodingFailure 包装值编码过程中出现的错误
func NewErrEncodingFailure(val any, cause error) error {
	return fmt.Errorf("%w %v: %v", ErrEncodingFailure, val, cause)
}

func NewErrUnsafeDML(typ string) error {
	return fmt.Errorf("%w: %s", ErrUnsafeDML, typ)
}

func NewErrInvalidTagContent(pair string) error {
	return fmt.Errorf("%w %s", ErrInvalidTagContent, pair)
}
