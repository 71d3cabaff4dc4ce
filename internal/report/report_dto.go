package report

import "github.com/cg-tech-git/pmo-v2/internal/fieldmap"

type GenerateReportRequest struct {
	CustomerName       string             `json:"customerName" binding:"required,max=200"`
	ReportDate         string             `json:"reportDate"` // YYYY-MM-DD or DD-MM-YYYY, empty for today
	SelectedEmployees  []string           `json:"selectedEmployees"`
	SelectedCategories fieldmap.Selection `json:"selectedCategories"`
	Formats            []string           `json:"formats"`
}

type ArtifactResponse struct {
	HistoryID   string `json:"historyId"`
	Format      Format `json:"format"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        string `json:"size"`
	SizeBytes   int64  `json:"sizeBytes"`
	Content     []byte `json:"content,omitempty"`
}

type GenerateReportResponse struct {
	CustomerName  string             `json:"customerName"`
	ReportDate    string             `json:"reportDate"`
	EmployeeCount int                `json:"employeeCount"`
	Artifacts     []ArtifactResponse `json:"artifacts"`
	Failed        []FormatFailure    `json:"failed,omitempty"`
}

// withoutContent drops artifact bytes. Replays point the client at
// the history download instead of holding every file in the cache.
func (r GenerateReportResponse) withoutContent() GenerateReportResponse {
	artifacts := make([]ArtifactResponse, len(r.Artifacts))
	for i, a := range r.Artifacts {
		a.Content = nil
		artifacts[i] = a
	}
	r.Artifacts = artifacts
	return r
}
