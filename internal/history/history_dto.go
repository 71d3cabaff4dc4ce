package history

import (
	"fmt"
	"time"
)

type ReportHistoryResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	FileType         string           `json:"fileType"`
	Size             string           `json:"size"`
	SizeBytes        int64            `json:"sizeBytes"`
	CreatedAt        time.Time        `json:"createdAt"`
	UploadedAt       string           `json:"uploadedAt"`
	UploadedBy       string           `json:"uploadedBy"`
	UploadedByName   string           `json:"uploadedByName"`
	CustomerName     string           `json:"customerName"`
	ReportDate       string           `json:"reportDate"`
	EmployeeCount    int              `json:"employeeCount"`
	GenerationParams GenerationParams `json:"generationParams"`
}

type ListHistoryRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=1000"`
}

// FormatSize renders a byte count the way the history list shows it.
func FormatSize(n int64) string {
	return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
}
