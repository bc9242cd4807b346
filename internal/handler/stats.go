package handler

import (
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/internal/database"
	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"
)

// GetStats 处理 GET /api/stats
// 返回会话与定义的统计信息
func GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := database.GetAllStats(r.Context())
	if err != nil {
		utils.ErrorResponse(w, http.StatusInternalServerError, "获取统计信息失败", err)
		return
	}

	utils.SuccessResponse(w, stats)
}
