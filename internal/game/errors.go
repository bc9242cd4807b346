package game

import "errors"

// 错误分类
// 所有错误对发起请求而言都是终态，核心不做任何自动重试
var (
	// ErrNotFound 会话、参与者或属性条目不存在
	ErrNotFound = errors.New("资源不存在")
	// ErrForbidden 调用者无权执行该事件
	ErrForbidden = errors.New("无权执行此操作")
	// ErrBadRequest 事件格式错误、类型未知或缺少必要字段
	ErrBadRequest = errors.New("无效的事件")
	// ErrVersionConflict 条件写入时版本已被其他提交者推进，调用方需重新加载后重试
	ErrVersionConflict = errors.New("会话版本冲突")
	// ErrStoreUnavailable 存储层临时不可用
	ErrStoreUnavailable = errors.New("存储暂时不可用")
)
