package service

import "errors"

// Error kinds; handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

// Error is a caller-facing failure: Kind classifies it, Msg is shown to the client.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func invalidArgument(msg string) error { return &Error{Kind: ErrInvalidArgument, Msg: msg} }

// Client-facing messages
const (
	MsgWorksIDRequired     = "参数错误：works_id不能为空"
	MsgTimelineIDRequired  = "参数错误：timeline_id不能为空"
	MsgPersonIDRequired    = "参数错误：person_id不能为空"
	MsgLocationRequired    = "参数错误：location不能为空"
	MsgTagIDPositive       = "参数错误：tag_id必须为正整数"
	MsgTagIDsInvalid       = "参数错误：tag_ids必须为逗号分隔的正整数"
	MsgPeriodInvalid       = "period 只能是 early/middle/late"
	MsgWorksNotFound       = "未找到该作品"
	MsgLifeTimelineMissing = "未找到该生平事件"
	MsgTimelineMissing     = "未找到该时间轴事件"
	MsgPersonMissing       = "未找到该人物"
)
