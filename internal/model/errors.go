package model

import "errors"

// 各层共用的错误类型，handler 据此映射 HTTP 状态码
var (
	ErrNotFound     = errors.New("not found")        // 引用的记录不存在
	ErrInvalidInput = errors.New("invalid input")    // 必填字段缺失、评分越界、评论为空等
	ErrInternal     = errors.New("internal failure") // 存储后端失败
)
