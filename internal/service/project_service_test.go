package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domainerrors "assomap/internal/errors"
	"assomap/internal/model"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByUser(ctx context.Context, userID uint) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockImageRepository is a mock implementation of ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockImageRepository) FindByID(ctx context.Context, id uint) (*model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageRepository) FindAll(ctx context.Context) ([]model.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockImageRepository) FindByProject(ctx context.Context, projectID uint) ([]model.Image, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockImageRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func floatPtr(v float64) *float64 { return &v }
func uintPtr(v uint) *uint        { return &v }
func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validProjectInput() ProjectInput {
	return ProjectInput{
		Nom:           "Atelier Vélo Solidaire",
		Description:   "Équipement pour réparation de vélos.",
		Longitude:     floatPtr(5.435),
		Latitude:      floatPtr(43.124),
		UtilisateurID: uintPtr(3),
		DateDebut:     "2025-02-15",
		Budget:        decimalPtr(2500),
		Categorie:     "Environnement",
		Localisation:  "Hyères",
	}
}

func TestProjectService_CreateProject(t *testing.T) {
	t.Run("missing fields listed in order", func(t *testing.T) {
		service := NewProjectService(new(MockProjectRepository), new(MockImageRepository), nil, true)

		_, err := service.CreateProject(context.Background(), ProjectInput{})

		var missing *domainerrors.MissingFieldsError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{
			"nom", "description", "longitude", "latitude", "utilisateur_id",
			"date_debut", "budget", "categorie", "localisation",
		}, missing.Fields)
	})

	t.Run("partial input only reports absent fields", func(t *testing.T) {
		service := NewProjectService(new(MockProjectRepository), new(MockImageRepository), nil, true)

		input := validProjectInput()
		input.Description = ""
		input.Budget = nil
		_, err := service.CreateProject(context.Background(), input)

		var missing *domainerrors.MissingFieldsError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"description", "budget"}, missing.Fields)
	})

	t.Run("zero coordinates are present, not missing", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
		service := NewProjectService(mockRepo, new(MockImageRepository), nil, true)

		input := validProjectInput()
		input.Longitude = floatPtr(0)
		input.Latitude = floatPtr(0)
		project, err := service.CreateProject(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, project.Longitude)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative budget rejected", func(t *testing.T) {
		service := NewProjectService(new(MockProjectRepository), new(MockImageRepository), nil, true)

		input := validProjectInput()
		input.Budget = decimalPtr(-100)
		_, err := service.CreateProject(context.Background(), input)

		assert.Equal(t, domainerrors.ErrNegativeBudget, err)
	})

	t.Run("successful create", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
		service := NewProjectService(mockRepo, new(MockImageRepository), nil, true)

		project, err := service.CreateProject(context.Background(), validProjectInput())

		assert.NoError(t, err)
		assert.Equal(t, "Atelier Vélo Solidaire", project.Nom)
		assert.Equal(t, uint(3), project.UtilisateurID)
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_GetProject(t *testing.T) {
	t.Run("not found maps to domain error", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
		service := NewProjectService(mockRepo, new(MockImageRepository), nil, true)

		_, err := service.GetProject(context.Background(), 42)

		assert.Equal(t, domainerrors.ErrProjectNotFound, err)
	})

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1, Nom: "Voile Bonheur"}, nil)
		service := NewProjectService(mockRepo, new(MockImageRepository), nil, true)

		project, err := service.GetProject(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Voile Bonheur", project.Nom)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Project{ID: 2, Nom: "Ancien Nom"}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.ID == 2 && p.Nom == "Atelier Vélo Solidaire"
	})).Return(nil)
	service := NewProjectService(mockRepo, new(MockImageRepository), nil, true)

	project, err := service.UpdateProject(context.Background(), 2, validProjectInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(2), project.ID)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_DeleteProject(t *testing.T) {
	t.Run("cascade removes image rows first", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockImages := new(MockImageRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Project{ID: 3}, nil)
		mockImages.On("DeleteByProject", mock.Anything, uint(3)).Return(nil)
		mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)
		service := NewProjectService(mockRepo, mockImages, nil, true)

		assert.NoError(t, service.DeleteProject(context.Background(), 3))
		mockImages.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no cascade leaves image rows alone", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockImages := new(MockImageRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Project{ID: 3}, nil)
		mockRepo.On("Delete", mock.Anything, uint(3)).Return(nil)
		service := NewProjectService(mockRepo, mockImages, nil, false)

		assert.NoError(t, service.DeleteProject(context.Background(), 3))
		mockImages.AssertNotCalled(t, "DeleteByProject", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing project", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
		service := NewProjectService(mockRepo, new(MockImageRepository), nil, true)

		assert.Equal(t, domainerrors.ErrProjectNotFound, service.DeleteProject(context.Background(), 9))
	})
}

func TestProjectService_ListProjectImages(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockImages := new(MockImageRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Project{ID: 1}, nil)
	mockImages.On("FindByProject", mock.Anything, uint(1)).Return([]model.Image{
		{ID: 1, ProjetID: 1, IsMain: true},
		{ID: 2, ProjetID: 1},
	}, nil)
	service := NewProjectService(mockRepo, mockImages, nil, true)

	images, err := service.ListProjectImages(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, images, 2)
}
