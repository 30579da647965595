package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/taskboard-dev/taskboard/internal/models"
	"github.com/taskboard-dev/taskboard/internal/store"
	"github.com/taskboard-dev/taskboard/internal/types"
)

// Board is the shared board store. Set once in main after the database
// connection is established.
var Board *store.Board

// respondStoreError maps the store's typed failures onto HTTP statuses.
// Anything unrecognized is a 500 and gets logged with the request id.
func respondStoreError(ctx *gin.Context, err error) {
	var validationErr *store.ValidationError
	var limitErr *store.LimitExceededError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &limitErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": limitErr.Error()})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		log.WithField("request_id", ctx.GetString(types.ContextRequestIDKey)).
			Errorf("Unexpected store error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseIDParam reads a numeric path parameter. A malformed id can never match
// a record, so it reports NotFound rather than a validation failure.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}

	return uint(id), true
}

func taskResponse(task *models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Column:      task.ColumnID,
		ColumnName:  task.Column.Name,
		Order:       task.Order,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func columnResponse(column *models.Column, taskCount int64) types.ColumnResponse {
	return types.ColumnResponse{
		ID:        column.ID,
		Name:      column.Name,
		Order:     column.Order,
		TaskCount: taskCount,
	}
}
