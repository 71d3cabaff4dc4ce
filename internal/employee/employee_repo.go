package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindActive(ctx context.Context, filter Filter) ([]Employee, error)
	FindByCodes(ctx context.Context, codes []string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// activeOnly must be applied before the other filters. gorm wraps each
// OR condition in parentheses once there is more than one.
func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("leaving_date IS NULL OR leaving_date = ''")
}

func (r *repository) FindActive(ctx context.Context, filter Filter) ([]Employee, error) {
	q := activeOnly(r.db.WithContext(ctx).
		Select("DISTINCT employee_code, employee_name, emp_id, department, designation"))

	if len(filter.Codes) > 0 {
		q = q.Where("employee_code IN ?", filter.Codes)
	}
	if len(filter.Departments) > 0 {
		q = q.Where("department IN ?", filter.Departments)
	}
	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(employee_name) LIKE ? OR employee_code LIKE ?", like, like)
	}

	var emps []Employee
	err := q.Order("employee_code").Find(&emps).Error
	return emps, err
}

func (r *repository) FindByCodes(ctx context.Context, codes []string) ([]Employee, error) {
	if len(codes) == 0 {
		return []Employee{}, nil
	}

	var emps []Employee
	err := r.db.WithContext(ctx).
		Where("employee_code IN ?", codes).
		Order("employee_code").
		Find(&emps).Error
	return emps, err
}
