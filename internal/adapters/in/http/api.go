package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types of openapi.yaml. Field names follow the document.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type NewOrder struct {
	OrderNo     string             `json:"order_no"`
	ProductName string             `json:"product_name"`
	Quantity    *int               `json:"quantity,omitempty"`
	DueDate     openapi_types.Date `json:"due_date"`
}

type NewOrders struct {
	Orders []NewOrder `json:"orders"`
}

type Order struct {
	Id                 openapi_types.UUID  `json:"id"`
	OrderNo            string              `json:"order_no"`
	ProductName        string              `json:"product_name"`
	Quantity           int                 `json:"quantity"`
	DueDate            openapi_types.Date  `json:"due_date"`
	Status             string              `json:"status"`
	CurrentProcessId   *openapi_types.UUID `json:"current_process_id"`
	CurrentProcessName string              `json:"current_process_name,omitempty"`
	ProgressPercentage int                 `json:"progress_percentage"`
	CreatedAt          time.Time           `json:"created_at"`
}

type LogLine struct {
	Id              openapi_types.UUID  `json:"id"`
	ProcessId       openapi_types.UUID  `json:"process_id"`
	ProcessName     string              `json:"process_name,omitempty"`
	WorkerId        *openapi_types.UUID `json:"worker_id"`
	WorkerName      string              `json:"worker_name,omitempty"`
	StartTime       time.Time           `json:"start_time"`
	EndTime         *time.Time          `json:"end_time"`
	DurationSeconds *int64              `json:"duration_seconds"`
}

type OrderDetail struct {
	Order     Order     `json:"order"`
	Processes []Process `json:"processes"`
	Log       []LogLine `json:"log"`
}

type Transition struct {
	OrderId            openapi_types.UUID  `json:"order_id"`
	OrderNo            string              `json:"order_no"`
	Status             string              `json:"status"`
	CurrentProcessId   *openapi_types.UUID `json:"current_process_id"`
	ProgressPercentage int                 `json:"progress_percentage"`
}

type RowFailure struct {
	Row     int    `json:"row"`
	OrderNo string `json:"order_no,omitempty"`
	Error   string `json:"error"`
}

type BulkResult struct {
	Succeeded int          `json:"succeeded"`
	Failures  []RowFailure `json:"failures"`
}

type Dashboard struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"in_progress"`
	NotStarted      int     `json:"not_started"`
	AverageProgress float64 `json:"average_progress"`
}

type Process struct {
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Order    int                `json:"order"`
}

type NewProcess struct {
	Name     string `json:"name"`
	Order int    `json:"order"`
}

type Worker struct {
	Id         openapi_types.UUID  `json:"id"`
	EmployeeId string              `json:"employee_id"`
	Name       string              `json:"name"`
	HireDate   *openapi_types.Date `json:"hire_date"`
	Department string              `json:"department,omitempty"`
	IsActive   bool                `json:"is_active"`
}

type NewWorker struct {
	EmployeeId string              `json:"employee_id"`
	Name       string              `json:"name"`
	Password   string              `json:"password"`
	HireDate   *openapi_types.Date `json:"hire_date,omitempty"`
	Department string              `json:"department,omitempty"`
	IsActive   *bool               `json:"is_active,omitempty"`
}

type WorkerUpdate struct {
	EmployeeId string              `json:"employee_id"`
	Name       string              `json:"name"`
	Password   string              `json:"password,omitempty"`
	HireDate   *openapi_types.Date `json:"hire_date,omitempty"`
	Department string              `json:"department,omitempty"`
	IsActive   *bool               `json:"is_active,omitempty"`
}
