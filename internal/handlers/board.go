package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskboard-dev/taskboard/internal/store"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

type ReorderColumnsRequest struct {
	ColumnOrders []store.OrderUpdate `json:"column_orders" binding:"required,min=1,dive"`
}

type ReorderTasksRequest struct {
	TaskOrders []store.OrderUpdate `json:"task_orders" binding:"required,min=1,dive"`
}

// GetBoard returns the complete board: every column in board order, each with
// its tasks in display order.
func GetBoard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	board, err := Board.GetBoard(userID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	columns := make([]types.BoardColumnResponse, 0, len(board))

	for i := range board {
		tasks := make([]types.TaskResponse, 0, len(board[i].Tasks))
		for j := range board[i].Tasks {
			tasks = append(tasks, taskResponse(&board[i].Tasks[j]))
		}
		columns = append(columns, types.BoardColumnResponse{
			ID:    board[i].Column.ID,
			Name:  board[i].Column.Name,
			Order: board[i].Column.Order,
			Tasks: tasks,
		})
	}

	ctx.JSON(http.StatusOK, types.BoardResponse{Columns: columns})
}

// ReorderColumns applies a batch of (id, order) pairs atomically. If any id
// in the batch is not the caller's column, nothing changes and the call is
// rejected with 403.
func ReorderColumns(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ReorderColumnsRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := Board.ReorderColumns(userID, body.ColumnOrders); err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Reordered %d columns for user %d", len(body.ColumnOrders), userID)

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"reordered_count": len(body.ColumnOrders),
	})
}

// ReorderTasks is the task counterpart of ReorderColumns: client-supplied
// order values are written verbatim in one transaction.
func ReorderTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ReorderTasksRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := Board.ReorderTasks(userID, body.TaskOrders); err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Reordered %d tasks for user %d", len(body.TaskOrders), userID)

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"reordered_count": len(body.TaskOrders),
	})
}
