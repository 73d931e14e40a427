// Package errcode 定义业务错误码
package errcode

import (
	"errors"
	"fmt"
	"net/http"
)

// 平台统一结果码
const (
	CodeSuccess        = 100200
	CodePartialSuccess = 102001
	CodeParamError     = 100400
	CodeUnauthorized   = 100401
	CodeForbidden      = 100403
	CodeNotFound       = 100404
	CodeFailed         = 100500
	CodeUserViewExist  = 101501
)

// Error 业务错误
// Key 为翻译键，由响应层按请求语言渲染，Detail 原样追加在翻译后的消息之后
type Error struct {
	Code       int
	HTTPStatus int
	Key        string
	Detail     string
	cause      error
}

func New(code, httpStatus int, key string) *Error {
	return &Error{Code: code, HTTPStatus: httpStatus, Key: key}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%d] %s", e.Code, e.Key)
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 按错误码比较，便于 errors.Is 匹配带参数的副本
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Key == t.Key
}

// WithDetail 返回携带补充说明的副本
func (e *Error) WithDetail(detail string) *Error {
	c := *e
	c.Detail = detail
	return &c
}

// Wrap 返回携带底层错误的副本
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

var (
	ErrParam            = New(CodeParamError, http.StatusBadRequest, "param_error")
	ErrUnauthorized     = New(CodeUnauthorized, http.StatusUnauthorized, "unauthorized")
	ErrTokenMissing     = New(CodeUnauthorized, http.StatusUnauthorized, "auth.token_missing")
	ErrTokenMalformed   = New(CodeUnauthorized, http.StatusUnauthorized, "auth.token_malformed")
	ErrTokenInvalid     = New(CodeUnauthorized, http.StatusUnauthorized, "auth.token_invalid")
	ErrInternal         = New(CodeFailed, http.StatusInternalServerError, "internal_error")
	ErrInvalidViewType  = New(CodeParamError, http.StatusBadRequest, "user_view.type_invalid")
	ErrUserViewExist    = New(CodeUserViewExist, http.StatusBadRequest, "user_view.exist")
	ErrCheckOwner       = New(CodeForbidden, http.StatusForbidden, "check_owner_case")
	ErrProjectNotExist  = New(CodeFailed, http.StatusInternalServerError, "project_is_not_exist")
	ErrRobotNotExist    = New(CodeFailed, http.StatusInternalServerError, "robot_is_null")
	ErrReceiverNotExist = New(CodeFailed, http.StatusInternalServerError, "user.not.exist")
)

// As 提取业务错误
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
