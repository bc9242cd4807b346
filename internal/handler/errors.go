// Package handler 提供 HTTP 请求处理器
package handler

import (
	"errors"
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/internal/game"
	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"
)

// writeEngineError 把核心错误分类映射为 HTTP 状态码
// 调用方能看到具体的失败类别；版本冲突返回 409 提示重新加载后重试
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, game.ErrForbidden):
		utils.ErrorResponse(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, game.ErrBadRequest):
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, game.ErrVersionConflict):
		utils.ErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, game.ErrStoreUnavailable):
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "存储暂时不可用", err)
	default:
		utils.ErrorResponse(w, http.StatusInternalServerError, "内部错误", err)
	}
}
