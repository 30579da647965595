package store

import (
	"errors"
	"strings"

	"github.com/taskboard-dev/taskboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultColumnNames are provisioned, in this order, for every new account.
var DefaultColumnNames = []string{"Backlog", "Next", "Today", "In Progress", "Done"}

// OrderUpdate pairs a record id with the order value the client wants it to
// hold after a batch reorder. Values are applied verbatim; gaps and duplicates
// are acceptable.
type OrderUpdate struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// BoardColumn is one column of the assembled board with its tasks attached.
type BoardColumn struct {
	Column models.Column
	Tasks  []models.Task
}

// Board owns all column and task operations. Every method is scoped to the
// owning user's id and never reads or writes another user's rows.
//
// Concurrent calls for the same owner are serialized only by the database's
// transaction isolation; two simultaneous reorders are last-write-wins.
type Board struct {
	db         *gorm.DB
	maxColumns int
}

// NewBoard returns a Board backed by db. maxColumns caps the number of
// columns per user; zero disables the cap.
func NewBoard(db *gorm.DB, maxColumns int) *Board {
	return &Board{db: db, maxColumns: maxColumns}
}

// ProvisionDefaultColumns creates the default column set for a new user.
// Called inside the registration transaction so a half-provisioned account
// is never visible.
func ProvisionDefaultColumns(tx *gorm.DB, userID uint) error {
	for i, name := range DefaultColumnNames {
		column := models.Column{UserID: userID, Name: name, Order: i + 1}
		if err := tx.Create(&column).Error; err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) CreateColumn(userID uint, name string) (*models.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "Column name cannot be empty."}
	}

	if b.maxColumns > 0 {
		var count int64
		if err := b.db.Model(&models.Column{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count >= int64(b.maxColumns) {
			return nil, &LimitExceededError{Limit: b.maxColumns}
		}
	}

	maxOrder, err := b.maxColumnOrder(userID)
	if err != nil {
		return nil, err
	}

	column := models.Column{UserID: userID, Name: name, Order: maxOrder + 1}

	if err := b.db.Create(&column).Error; err != nil {
		return nil, err
	}

	return &column, nil
}

func (b *Board) GetColumn(userID, columnID uint) (*models.Column, error) {
	var column models.Column

	err := b.db.Where("id = ? AND user_id = ?", columnID, userID).First(&column).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &column, nil
}

// RenameColumn updates a column's name. The owner and order are untouched.
func (b *Board) RenameColumn(userID, columnID uint, name string) (*models.Column, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "Column name cannot be empty."}
	}

	column, err := b.GetColumn(userID, columnID)

	if err != nil {
		return nil, err
	}

	column.Name = name

	if err := b.db.Omit(clause.Associations).Save(column).Error; err != nil {
		return nil, err
	}

	return column, nil
}

// DeleteColumn removes a column and every task in it. The delete of the
// tasks and the column is one transaction so no task is ever left pointing
// at a missing column.
func (b *Board) DeleteColumn(userID, columnID uint) error {
	column, err := b.GetColumn(userID, columnID)

	if err != nil {
		return err
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_id = ? AND user_id = ?", column.ID, userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(column).Error
	})
}

// ListColumns returns the user's columns in board order. Ties on order are
// broken by id so the layout is stable.
func (b *Board) ListColumns(userID uint) ([]models.Column, error) {
	var columns []models.Column

	err := b.db.Where("user_id = ?", userID).
		Order("sort_order ASC, id ASC").
		Find(&columns).Error

	if err != nil {
		return nil, err
	}

	return columns, nil
}

// TaskCounts returns the number of tasks per column id for the user.
func (b *Board) TaskCounts(userID uint) (map[uint]int64, error) {
	var rows []struct {
		ColumnID uint
		Count    int64
	}

	err := b.db.Model(&models.Task{}).
		Select("column_id, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("column_id").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ColumnID] = row.Count
	}

	return counts, nil
}

// CreateTask creates a task in one of the user's columns. The new task goes
// to the end of the global ordering: 1 + the highest order across ALL of the
// user's tasks, regardless of column.
//
// A column id that does not resolve to one of the user's own columns is a
// ValidationError, not a NotFound, so the response never reveals whether the
// column exists for someone else.
func (b *Board) CreateTask(userID, columnID uint, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "Title cannot be empty or whitespace only."}
	}

	column, err := b.GetColumn(userID, columnID)

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &ValidationError{Field: "column_id", Message: "Invalid column."}
		}
		return nil, err
	}

	maxOrder, err := b.maxTaskOrder(userID)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		ColumnID:    column.ID,
		Order:       maxOrder + 1,
	}

	if err := b.db.Omit(clause.Associations).Create(&task).Error; err != nil {
		return nil, err
	}

	task.Column = *column

	return &task, nil
}

func (b *Board) GetTask(userID, taskID uint) (*models.Task, error) {
	var task models.Task

	err := b.db.Preload("Column").
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &task, nil
}

// UpdateTask rewrites a task's title and description, and its order when a
// new one is supplied. The column is not touched here; moving is MoveTask.
func (b *Board) UpdateTask(userID, taskID uint, title, description string, order *int) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "Title cannot be empty or whitespace only."}
	}

	task, err := b.GetTask(userID, taskID)

	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description
	if order != nil {
		task.Order = *order
	}

	if err := b.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (b *Board) DeleteTask(userID, taskID uint) error {
	task, err := b.GetTask(userID, taskID)

	if err != nil {
		return err
	}

	return b.db.Delete(task).Error
}

// MoveTask puts a task into another of the user's columns. The task's order
// is left exactly as it was unless the caller supplies a new one, which is
// how priority survives a move between columns.
func (b *Board) MoveTask(userID, taskID, targetColumnID uint, order *int) (*models.Task, error) {
	task, err := b.GetTask(userID, taskID)

	if err != nil {
		return nil, err
	}

	column, err := b.GetColumn(userID, targetColumnID)

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &ValidationError{Field: "column_id", Message: "Invalid column."}
		}
		return nil, err
	}

	task.ColumnID = column.ID
	if order != nil {
		task.Order = *order
	}

	if err := b.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return nil, err
	}

	task.Column = *column

	return task, nil
}

// ListTasks returns the user's tasks sorted by (order asc, created_at desc),
// optionally restricted to a single column.
func (b *Board) ListTasks(userID uint, columnID *uint) ([]models.Task, error) {
	query := b.db.Preload("Column").Where("user_id = ?", userID)

	if columnID != nil {
		query = query.Where("column_id = ?", *columnID)
	}

	var tasks []models.Task

	if err := query.Order("sort_order ASC, created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// ReorderColumns applies the supplied order values verbatim, all in one
// transaction. If any referenced id is not one of the user's own columns the
// whole call fails with ErrForbidden before anything is written.
func (b *Board) ReorderColumns(userID uint, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return &ValidationError{Field: "column_orders", Message: "At least one item is required."}
	}

	if err := b.checkOwnership(&models.Column{}, userID, updates); err != nil {
		return err
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			err := tx.Model(&models.Column{}).
				Where("id = ? AND user_id = ?", update.ID, userID).
				Update("sort_order", update.Order).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ReorderTasks is ReorderColumns over tasks: verbatim order assignment, one
// transaction, all-or-nothing ownership check. No renumbering or compaction
// happens; gaps in the resulting sequence are expected.
func (b *Board) ReorderTasks(userID uint, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return &ValidationError{Field: "task_orders", Message: "At least one item is required."}
	}

	if err := b.checkOwnership(&models.Task{}, userID, updates); err != nil {
		return err
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			err := tx.Model(&models.Task{}).
				Where("id = ? AND user_id = ?", update.ID, userID).
				Update("sort_order", update.Order).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetBoard assembles the user's full board: columns in board order, each with
// its tasks in (order asc, created_at desc) order.
func (b *Board) GetBoard(userID uint) ([]BoardColumn, error) {
	columns, err := b.ListColumns(userID)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task

	err = b.db.Where("user_id = ?", userID).
		Order("sort_order ASC, created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	tasksByColumn := make(map[uint][]models.Task, len(columns))
	for _, task := range tasks {
		tasksByColumn[task.ColumnID] = append(tasksByColumn[task.ColumnID], task)
	}

	board := make([]BoardColumn, 0, len(columns))

	for _, column := range columns {
		columnTasks := tasksByColumn[column.ID]
		for i := range columnTasks {
			columnTasks[i].Column = column
		}
		board = append(board, BoardColumn{Column: column, Tasks: columnTasks})
	}

	return board, nil
}

// checkOwnership verifies every id in updates belongs to userID. Runs before
// any reorder write so a batch touching a foreign id never mutates anything.
func (b *Board) checkOwnership(model interface{}, userID uint, updates []OrderUpdate) error {
	ids := make([]uint, 0, len(updates))
	seen := make(map[uint]bool, len(updates))

	for _, update := range updates {
		if !seen[update.ID] {
			seen[update.ID] = true
			ids = append(ids, update.ID)
		}
	}

	var count int64

	err := b.db.Model(model).
		Where("id IN ? AND user_id = ?", ids, userID).
		Count(&count).Error

	if err != nil {
		return err
	}

	if count != int64(len(ids)) {
		return ErrForbidden
	}

	return nil
}

func (b *Board) maxColumnOrder(userID uint) (int, error) {
	var max int

	err := b.db.Model(&models.Column{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error

	return max, err
}

func (b *Board) maxTaskOrder(userID uint) (int, error) {
	var max int

	err := b.db.Model(&models.Task{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error

	return max, err
}
