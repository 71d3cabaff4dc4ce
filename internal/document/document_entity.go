package document

import "strings"

// PendingNumber is the warehouse placeholder for a document that has not been issued yet.
const PendingNumber = "Pending"

// Document mirrors one row of the warehouse employee_documents table.
// Dates are kept as the display strings the warehouse stores.
type Document struct {
	ID              int64  `gorm:"column:id;primaryKey" json:"-"`
	EmployeeCode    string `gorm:"column:employee_code;index" json:"employee_code"`
	Name            string `gorm:"column:document_name" json:"document_name"`
	Number          string `gorm:"column:document_number" json:"document_number"`
	ReferenceNumber string `gorm:"column:reference_number" json:"reference_number"`
	EntryDate       string `gorm:"column:entry_date;type:text" json:"entry_date"`
	DueDate         string `gorm:"column:due_date;type:text" json:"due_date"`
	VisaType        string `gorm:"column:visa_type" json:"visa_type"`
	FileName        string `gorm:"column:file_name" json:"file_name"`
	FileType        string `gorm:"column:file_type" json:"file_type"`
}

func (Document) TableName() string {
	return "employee_documents"
}

// HasNumber reports whether the document carries a real (issued) number.
func (d Document) HasNumber() bool {
	n := strings.TrimSpace(d.Number)
	return n != "" && n != PendingNumber
}
