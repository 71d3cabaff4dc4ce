package history

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// MaxListed bounds the history list, newest first.
const MaxListed = 1000

//go:generate mockgen -source=history_repo.go -destination=mock/history_repo_mock.go -package=mock
type Repository interface {
	ListNames(ctx context.Context, prefix string) ([]string, error)
	CreateBatch(ctx context.Context, rows []ReportHistory) error
	FindAll(ctx context.Context, limit int) ([]ReportHistory, error)
	FindByID(ctx context.Context, id string) (*ReportHistory, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListNames returns recorded report names starting with prefix.
func (r *repository) ListNames(ctx context.Context, prefix string) ([]string, error) {
	q := r.db.WithContext(ctx).Model(&ReportHistory{})
	if prefix != "" {
		q = q.Where("report_name LIKE ?", likeEscaper.Replace(prefix)+"%")
	}

	var names []string
	err := q.Pluck("report_name", &names).Error
	return names, err
}

// CreateBatch inserts all rows in one statement so a batch is recorded entirely or not at all.
func (r *repository) CreateBatch(ctx context.Context, rows []ReportHistory) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]ReportHistory, error) {
	if limit <= 0 || limit > MaxListed {
		limit = MaxListed
	}

	var rows []ReportHistory
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ReportHistory, error) {
	var row ReportHistory
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&ReportHistory{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
