package file

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]*File, error)
	Create(ctx context.Context, f *File) error
	GetByID(ctx context.Context, id string) (*File, error)
	IncrementDownloads(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*File, error) {
	files := make([]*File, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&files).Error
	return files, err
}

func (r *repository) Create(ctx context.Context, f *File) error {
	err := r.db.WithContext(ctx).Create(f).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateFilename
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// IncrementDownloads bumps the counter in a single statement so concurrent
// downloads never lose an increment.
func (r *repository) IncrementDownloads(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&File{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + ?", 1)).Error
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&File{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite reports constraint violations as plain text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
