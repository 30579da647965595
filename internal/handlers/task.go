package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskboard-dev/taskboard/internal/types"
	"github.com/taskboard-dev/taskboard/internal/utils"
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ColumnID    uint   `json:"column_id" binding:"required"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       *int   `json:"order"`
}

type MoveTaskRequest struct {
	ColumnID uint `json:"column_id" binding:"required"`
	Order    *int `json:"order"`
}

func CreateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateTaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := Board.CreateTask(userID, body.ColumnID, body.Title, body.Description)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Created task %q in column %q for user %d", task.Title, task.Column.Name, userID)

	ctx.JSON(http.StatusCreated, taskResponse(task))
}

// ListTasks returns the caller's tasks in display order. The optional
// ?column= query parameter restricts the list to one column.
func ListTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var columnID *uint

	if raw := ctx.Query("column"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column filter"})
			return
		}
		id := uint(parsed)
		columnID = &id
	}

	tasks, err := Board.ListTasks(userID, columnID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for i := range tasks {
		response = append(response, taskResponse(&tasks[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := parseIDParam(ctx, "task_id")

	if !ok {
		return
	}

	task, err := Board.GetTask(userID, taskID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := parseIDParam(ctx, "task_id")

	if !ok {
		return
	}

	var body UpdateTaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := Board.UpdateTask(userID, taskID, body.Title, body.Description, body.Order)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := parseIDParam(ctx, "task_id")

	if !ok {
		return
	}

	if err := Board.DeleteTask(userID, taskID); err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Deleted task %d for user %d", taskID, userID)

	ctx.Status(http.StatusNoContent)
}

// MoveTask puts a task into another column. Without an explicit order the
// task keeps its global order value, so its priority carries across the move.
func MoveTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := parseIDParam(ctx, "task_id")

	if !ok {
		return
	}

	var body MoveTaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := Board.MoveTask(userID, taskID, body.ColumnID, body.Order)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	log.Infof("Moved task %d to column %q for user %d", task.ID, task.Column.Name, userID)

	ctx.JSON(http.StatusOK, taskResponse(task))
}
