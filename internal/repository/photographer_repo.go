package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"photobooking/internal/domain"
)

var ErrPhotographerNotFound = errors.New("photographer not found")

type PhotographerRepository struct {
	db *gorm.DB
}

func NewPhotographerRepository(db *gorm.DB) *PhotographerRepository {
	return &PhotographerRepository{db: db}
}

// List returns every photographer ordered by id.
func (r *PhotographerRepository) List(ctx context.Context) ([]domain.Photographer, error) {
	var out []domain.Photographer
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PhotographerRepository) GetByID(ctx context.Context, id string) (*domain.Photographer, error) {
	var p domain.Photographer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPhotographerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or replaces catalog rows by id. Used by seeding only.
func (r *PhotographerRepository) Upsert(ctx context.Context, ps []domain.Photographer) error {
	if len(ps) == 0 {
		return nil
	}
	rows := make([]domain.Photographer, len(ps))
	copy(rows, ps)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rows).Error
}
