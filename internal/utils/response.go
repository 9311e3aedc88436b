package utils

import "partner-commission-api/internal/constant"

// 统一响应格式（支持中英文提示）
type Response struct {
	Code  int         `json:"code"`
	Msg   string      `json:"msg"`              // 中文描述
	MsgEN string      `json:"msg_en,omitempty"` // 英文描述
	Kind  string      `json:"kind,omitempty"`   // 错误分类
	Data  interface{} `json:"data,omitempty"`
}

// 成功响应
func Success(data interface{}) Response {
	return Response{
		Code:  constant.CodeSuccess,
		Msg:   "成功",
		MsgEN: "Success",
		Data:  data,
	}
}

// 错误响应（自动从 constant 中获取中英文描述）
func Error(code int) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{
			Code:  code,
			Msg:   info.CN,
			MsgEN: info.EN,
			Kind:  string(constant.KindOf(code)),
		}
	}
	return Response{
		Code:  code,
		Msg:   "未知错误",
		MsgEN: "Unknown error",
	}
}

// 从 error 构造错误响应，保留自定义错误的补充说明
func ErrorFrom(err error) Response {
	code := constant.CodeFrom(err)
	resp := Error(code)
	if ce, ok := err.(constant.Error); ok {
		resp.Msg = ce.Message()
	}
	return resp
}

// 带数据的错误响应
func ErrorWithData(code int, data interface{}) Response {
	resp := Error(code)
	resp.Data = data
	return resp
}
