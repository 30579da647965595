package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

type CreateColumnRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateColumnRequest struct {
	Name string `json:"name" binding:"required"`
}

func CreateColumn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateColumnRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := Board.CreateColumn(userID, body.Name)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Created column %q for user %d", column.Name, userID)

	ctx.JSON(http.StatusCreated, columnResponse(column, 0))
}

func ListColumns(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	columns, err := Board.ListColumns(userID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	counts, err := Board.TaskCounts(userID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	response := make([]types.ColumnResponse, 0, len(columns))

	for i := range columns {
		response = append(response, columnResponse(&columns[i], counts[columns[i].ID]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetColumn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	columnID, ok := parseIDParam(ctx, "column_id")

	if !ok {
		return
	}

	column, err := Board.GetColumn(userID, columnID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	counts, err := Board.TaskCounts(userID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, columnResponse(column, counts[column.ID]))
}

func UpdateColumn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	columnID, ok := parseIDParam(ctx, "column_id")

	if !ok {
		return
	}

	var body UpdateColumnRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := Board.RenameColumn(userID, columnID, body.Name)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	counts, err := Board.TaskCounts(userID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, columnResponse(column, counts[column.ID]))
}

func DeleteColumn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	columnID, ok := parseIDParam(ctx, "column_id")

	if !ok {
		return
	}

	if err := Board.DeleteColumn(userID, columnID); err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Deleted column %d for user %d", columnID, userID)

	ctx.Status(http.StatusNoContent)
}
