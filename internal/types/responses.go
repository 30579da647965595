package types

import "time"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ColumnResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	TaskCount int64  `json:"task_count"`
}

type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Column      uint      `json:"column"`
	ColumnName  string    `json:"column_name"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BoardColumnResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Order int            `json:"order"`
	Tasks []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}
