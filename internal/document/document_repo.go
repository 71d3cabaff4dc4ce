package document

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	FindByEmployeeCodes(ctx context.Context, codes []string) ([]Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployeeCodes(ctx context.Context, codes []string) ([]Document, error) {
	if len(codes) == 0 {
		return []Document{}, nil
	}

	var docs []Document
	err := r.db.WithContext(ctx).
		Where("employee_code IN ?", codes).
		Order("employee_code, document_name, id").
		Find(&docs).Error
	return docs, err
}
