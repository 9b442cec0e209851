package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assomap/internal/cache"
	domainerrors "assomap/internal/errors"
	"assomap/internal/model"
	"assomap/internal/repository"
)

// uploadURLPrefix is the public path under which stored files are served.
const uploadURLPrefix = "/images/projets/"

// ImageService exposes image listing, upload and bulk deletion.
type ImageService interface {
	ListImages(ctx context.Context) ([]model.Image, error)
	// Upload persists the file to disk under a generated unique name,
	// links an image row to the project and serves back the stored record.
	// The file is removed again if the database insert fails.
	Upload(ctx context.Context, projectID uint, isMain bool, file *multipart.FileHeader) (*model.Image, error)
	DeleteProjectImages(ctx context.Context, projectID uint) error
}

type imageService struct {
	repo        repository.ImageRepository
	projectRepo repository.ProjectRepository
	cache       *cache.Client
	uploadDir   string
	maxBytes    int64
}

// NewImageService builds an ImageService storing files under uploadDir.
func NewImageService(repo repository.ImageRepository, projectRepo repository.ProjectRepository, cache *cache.Client, uploadDir string, maxBytes int64) ImageService {
	return &imageService{
		repo:        repo,
		projectRepo: projectRepo,
		cache:       cache,
		uploadDir:   uploadDir,
		maxBytes:    maxBytes,
	}
}

func (s *imageService) ListImages(ctx context.Context) ([]model.Image, error) {
	return s.repo.FindAll(ctx)
}

func (s *imageService) Upload(ctx context.Context, projectID uint, isMain bool, file *multipart.FileHeader) (*model.Image, error) {
	if file == nil {
		return nil, domainerrors.ErrNoFile
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, domainerrors.ErrFileTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return nil, domainerrors.ErrNotAnImage
	}

	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}
		return nil, err
	}

	// Unique name avoids collisions between uploads of the same filename.
	name := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(s.uploadDir, name)
	if err := s.saveFile(file, path); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	image := &model.Image{
		ProjetID:  projectID,
		URL:       uploadURLPrefix + name,
		IsMain:    isMain,
		IsPreview: false,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		// keep disk and database consistent: no row, no file
		_ = os.Remove(path)
		return nil, fmt.Errorf("create image record: %w", err)
	}

	_ = s.cache.Delete(ctx, projectListCacheKey)
	return image, nil
}

func (s *imageService) DeleteProjectImages(ctx context.Context, projectID uint) error {
	if err := s.repo.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("delete project images: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}

func (s *imageService) saveFile(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
