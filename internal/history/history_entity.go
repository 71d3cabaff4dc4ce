package history

import (
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerationParams is everything needed to rebuild a recorded artifact.
type GenerationParams struct {
	CustomerName       string             `json:"customerName"`
	ReportDate         string             `json:"reportDate"`
	SelectedEmployees  []string           `json:"selectedEmployees"`
	SelectedCategories fieldmap.Selection `json:"selectedCategories"`
	ReportFormat       string             `json:"reportFormat"`
}

type ReportHistory struct {
	ID               uuid.UUID                            `gorm:"type:uuid;primaryKey"`
	ReportName       string                               `gorm:"column:report_name;index"`
	FileType         string                               `gorm:"column:file_type"`
	FileSize         string                               `gorm:"column:file_size"`
	SizeBytes        int64                                `gorm:"column:size_bytes"`
	CreatedAt        time.Time                            `gorm:"column:created_at"`
	CreatedByEmail   string                               `gorm:"column:created_by_email"`
	CreatedByName    string                               `gorm:"column:created_by_name"`
	CustomerName     string                               `gorm:"column:customer_name"`
	ReportDate       string                               `gorm:"column:report_date"`
	EmployeeCount    int                                  `gorm:"column:employee_count"`
	GenerationParams datatypes.JSONType[GenerationParams] `gorm:"column:generation_params;type:jsonb"`
	CloudStorageURL  *string                              `gorm:"column:cloud_storage_url"`
}

func (ReportHistory) TableName() string {
	return "report_history"
}
