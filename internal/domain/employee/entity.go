package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	UserID           *string
	WorkScheduleID   string
	EmployeeCode     string
	FullName         string
	Position         string
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	BaseSalary       *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
