package sqlcmd

import (
	"github.com/startdusk/sqlcmd/internal/errs"
)

// 通过桥接的方式将内部错误导出外部
// 调用方使用 errors.Is 判断具体的错误
var (
	ErrMissingTable          = errs.ErrMissingTable
	ErrEmptyInsert           = errs.ErrEmptyInsert
	ErrEmptyUpdate           = errs.ErrEmptyUpdate
	ErrEncodingFailure       = errs.ErrEncodingFailure
	ErrUnsupportedValue      = errs.ErrUnsupportedValue
	ErrUnsupportedExpression = errs.ErrUnsupportedExpression
	ErrUnsupportedKind       = errs.ErrUnsupportedKind
	ErrUnsafeDML             = errs.ErrUnsafeDML
	ErrDeleteForbidden       = errs.ErrDeleteForbidden
	ErrPointerOnly           = errs.ErrPointerOnly
	ErrNilEntity             = errs.ErrNilEntity
	ErrInvalidTagContent     = errs.ErrInvalidTagContent
)
