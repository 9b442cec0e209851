package repository

import (
	"context"

	"gorm.io/gorm"

	"assomap/internal/model"
)

// ImageRepository defines image persistence operations.
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Image, error)
	FindAll(ctx context.Context) ([]model.Image, error)
	FindByProject(ctx context.Context, projectID uint) ([]model.Image, error)
	DeleteByProject(ctx context.Context, projectID uint) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository builds a GORM-backed repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Image{}, id).Error
}

func (r *imageRepository) FindByID(ctx context.Context, id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) FindAll(ctx context.Context) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) FindByProject(ctx context.Context, projectID uint) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.WithContext(ctx).Where("projet_id = ?", projectID).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteByProject removes every image row linked to a project.
func (r *imageRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("projet_id = ?", projectID).Delete(&model.Image{}).Error
}
