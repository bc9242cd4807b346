package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cyril-colin/pagemaster-sub001/internal/database"
	"github.com/cyril-colin/pagemaster-sub001/internal/game"
	"github.com/cyril-colin/pagemaster-sub001/pkg/utils"

	"github.com/google/uuid"
)

// CreateDefinition 处理 POST /api/definitions
// 游戏定义创建后不可变，只能整体新建
func CreateDefinition(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxBodySize)
	defer func() { _ = r.Body.Close() }()

	var def game.GameDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "无效的请求格式", err)
		return
	}
	if def.Name == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "缺少游戏名称", nil)
		return
	}
	if def.MinPlayers < 1 || def.MaxPlayers < def.MinPlayers {
		utils.ErrorResponse(w, http.StatusBadRequest, "无效的玩家人数范围", nil)
		return
	}

	// ID 由服务端分配
	def.ID = uuid.New().String()

	if err := database.CreateDefinition(r.Context(), &def); err != nil {
		writeEngineError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, def)
}

// GetDefinition 处理 GET /api/definitions/{definitionId}
func GetDefinition(w http.ResponseWriter, r *http.Request) {
	definitionID := r.PathValue("definitionId")
	if definitionID == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "缺少游戏定义ID", nil)
		return
	}

	def, err := database.GetDefinitionByID(r.Context(), definitionID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	utils.SuccessResponse(w, def)
}

// GetAllDefinitions 处理 GET /api/definitions
func GetAllDefinitions(w http.ResponseWriter, r *http.Request) {
	defs, err := database.GetAllDefinitions(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	utils.SuccessResponse(w, defs)
}
