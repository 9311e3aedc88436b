package constant

import "fmt"

// Kind 错误分类，按错误码千位段映射
type Kind string

const (
	KindSystem         Kind = "SystemError"
	KindValidation     Kind = "ValidationError"
	KindHierarchy      Kind = "HierarchyError"
	KindReconciliation Kind = "ReconciliationError"
	KindPersistence    Kind = "PersistenceError"
)

// KindOf 根据错误码段返回错误分类
func KindOf(code int) Kind {
	switch code / 1000 {
	case 2:
		return KindValidation
	case 3:
		return KindHierarchy
	case 4:
		return KindReconciliation
	case 5:
		return KindPersistence
	default:
		return KindSystem
	}
}

// Error 错误接口
type Error interface {
	error
	Code() int
	Kind() Kind
	Message() string
	WithData(data interface{}) Error
}

// CustomError 自定义错误实现
type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, kind: %s, message: %s", e.code, e.Kind(), e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Kind() Kind {
	return KindOf(e.code)
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) Data() interface{} {
	return e.data
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

// NewError 创建错误
func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: info.CN}
	}
	return &CustomError{code: code, message: "未知错误"}
}

// NewErrorf 创建携带补充说明的错误
func NewErrorf(code int, format string, args ...interface{}) Error {
	base := "未知错误"
	if info, exists := ErrorMessages[code]; exists {
		base = info.CN
	}
	return &CustomError{code: code, message: base + ": " + fmt.Sprintf(format, args...)}
}

// GetErrorInfo 获取错误信息
func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}

// CodeFrom 提取错误码，非 constant.Error 一律视为系统错误
func CodeFrom(err error) int {
	if err == nil {
		return CodeSuccess
	}
	if ce, ok := err.(Error); ok {
		return ce.Code()
	}
	return CodeSystemError
}
