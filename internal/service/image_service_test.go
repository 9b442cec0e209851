package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domainerrors "assomap/internal/errors"
	"assomap/internal/model"
)

// multipartFile builds a real FileHeader the way echo hands one to the
// handler layer.
func multipartFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	assert.Len(t, files, 1)
	return files[0]
}

func TestImageService_Upload(t *testing.T) {
	content := []byte("fake-jpeg-bytes")

	t.Run("successful upload stores file and row", func(t *testing.T) {
		dir := t.TempDir()
		mockImages := new(MockImageRepository)
		mockProjects := new(MockProjectRepository)
		mockProjects.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
		mockImages.On("Create", mock.Anything, mock.AnythingOfType("*model.Image")).Return(nil)

		service := NewImageService(mockImages, mockProjects, nil, dir, 5*1024*1024)
		file := multipartFile(t, "photo.jpg", "image/jpeg", content)

		image, err := service.Upload(context.Background(), 1, true, file)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), image.ProjetID)
		assert.True(t, image.IsMain)
		assert.True(t, strings.HasPrefix(image.URL, "/images/projets/"))
		assert.True(t, strings.HasSuffix(image.URL, ".jpg"))
		assert.NotContains(t, image.URL, "photo")

		stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(image.URL)))
		assert.NoError(t, err)
		assert.Equal(t, content, stored)

		mockImages.AssertExpectations(t)
	})

	t.Run("database failure removes the stored file", func(t *testing.T) {
		dir := t.TempDir()
		mockImages := new(MockImageRepository)
		mockProjects := new(MockProjectRepository)
		mockProjects.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
		mockImages.On("Create", mock.Anything, mock.AnythingOfType("*model.Image")).Return(assert.AnError)

		service := NewImageService(mockImages, mockProjects, nil, dir, 5*1024*1024)
		file := multipartFile(t, "photo.jpg", "image/jpeg", content)

		_, err := service.Upload(context.Background(), 1, false, file)

		assert.Error(t, err)
		entries, readErr := os.ReadDir(dir)
		assert.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("nil file", func(t *testing.T) {
		service := NewImageService(new(MockImageRepository), new(MockProjectRepository), nil, t.TempDir(), 5*1024*1024)

		_, err := service.Upload(context.Background(), 1, false, nil)

		assert.Equal(t, domainerrors.ErrNoFile, err)
	})

	t.Run("file over the size limit", func(t *testing.T) {
		service := NewImageService(new(MockImageRepository), new(MockProjectRepository), nil, t.TempDir(), 4)
		file := multipartFile(t, "big.jpg", "image/jpeg", content)

		_, err := service.Upload(context.Background(), 1, false, file)

		assert.Equal(t, domainerrors.ErrFileTooLarge, err)
	})

	t.Run("non-image content type", func(t *testing.T) {
		service := NewImageService(new(MockImageRepository), new(MockProjectRepository), nil, t.TempDir(), 5*1024*1024)
		file := multipartFile(t, "notes.pdf", "application/pdf", content)

		_, err := service.Upload(context.Background(), 1, false, file)

		assert.Equal(t, domainerrors.ErrNotAnImage, err)
	})

	t.Run("unknown project", func(t *testing.T) {
		mockProjects := new(MockProjectRepository)
		mockProjects.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewImageService(new(MockImageRepository), mockProjects, nil, t.TempDir(), 5*1024*1024)
		file := multipartFile(t, "photo.png", "image/png", content)

		_, err := service.Upload(context.Background(), 99, false, file)

		assert.Equal(t, domainerrors.ErrProjectNotFound, err)
	})
}

func TestImageService_DeleteProjectImages(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockImages.On("DeleteByProject", mock.Anything, uint(4)).Return(nil)
	service := NewImageService(mockImages, new(MockProjectRepository), nil, t.TempDir(), 5*1024*1024)

	assert.NoError(t, service.DeleteProjectImages(context.Background(), 4))
	mockImages.AssertExpectations(t)
}
