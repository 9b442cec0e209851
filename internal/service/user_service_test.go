package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domainerrors "assomap/internal/errors"
	"assomap/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
		service := NewUserService(mockRepo, new(MockProjectRepository), new(MockImageRepository), nil, false)

		_, err := service.GetUser(context.Background(), 42)

		assert.Equal(t, domainerrors.ErrUserNotFound, err)
	})

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Prenom: "Chant des Dauphins"}, nil)
		service := NewUserService(mockRepo, new(MockProjectRepository), new(MockImageRepository), nil, false)

		user, err := service.GetUser(context.Background(), 2)

		assert.NoError(t, err)
		assert.Equal(t, "Chant des Dauphins", user.Prenom)
	})
}

func TestUserService_ListUserProjects(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockProjects := new(MockProjectRepository)
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3}, nil)
	mockProjects.On("FindByUser", mock.Anything, uint(3)).Return([]model.Project{
		{ID: 2, Nom: "Atelier Vélo Solidaire", UtilisateurID: 3},
		{ID: 7, Nom: "Atelier Peinture Nice", UtilisateurID: 3},
	}, nil)
	service := NewUserService(mockRepo, mockProjects, new(MockImageRepository), nil, false)

	projects, err := service.ListUserProjects(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestUserService_UpdateUser(t *testing.T) {
	storedHash, _ := bcrypt.GenerateFromPassword([]byte("ancien"), bcryptCost)

	t.Run("empty password keeps the stored hash", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{
			ID: 2, MotDePasse: string(storedHash), Role: model.RoleUser,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		service := NewUserService(mockRepo, new(MockProjectRepository), new(MockImageRepository), nil, false)

		updated, err := service.UpdateUser(context.Background(), 2, &model.User{Nom: "Assoc", Email: "new@example.com"}, "")

		assert.NoError(t, err)
		assert.Equal(t, string(storedHash), updated.MotDePasse)
		assert.Equal(t, model.RoleUser, updated.Role)
	})

	t.Run("new password is rehashed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{
			ID: 2, MotDePasse: string(storedHash), Role: model.RoleUser,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		service := NewUserService(mockRepo, new(MockProjectRepository), new(MockImageRepository), nil, false)

		updated, err := service.UpdateUser(context.Background(), 2, &model.User{Nom: "Assoc", Email: "new@example.com"}, "nouveau83")

		assert.NoError(t, err)
		assert.NotEqual(t, string(storedHash), updated.MotDePasse)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.MotDePasse), []byte("nouveau83")))
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
		service := NewUserService(mockRepo, new(MockProjectRepository), new(MockImageRepository), nil, false)

		_, err := service.UpdateUser(context.Background(), 9, &model.User{}, "")

		assert.Equal(t, domainerrors.ErrUserNotFound, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("cascade removes projects and their images", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockProjects := new(MockProjectRepository)
		mockImages := new(MockImageRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
		mockProjects.On("FindByUser", mock.Anything, uint(5)).Return([]model.Project{
			{ID: 4, UtilisateurID: 5},
			{ID: 10, UtilisateurID: 5},
		}, nil)
		mockImages.On("DeleteByProject", mock.Anything, uint(4)).Return(nil)
		mockImages.On("DeleteByProject", mock.Anything, uint(10)).Return(nil)
		mockProjects.On("DeleteByUser", mock.Anything, uint(5)).Return(nil)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
		service := NewUserService(mockRepo, mockProjects, mockImages, nil, true)

		assert.NoError(t, service.DeleteUser(context.Background(), 5))
		mockImages.AssertExpectations(t)
		mockProjects.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no cascade deletes only the user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockProjects := new(MockProjectRepository)
		mockImages := new(MockImageRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5}, nil)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
		service := NewUserService(mockRepo, mockProjects, mockImages, nil, false)

		assert.NoError(t, service.DeleteUser(context.Background(), 5))
		mockProjects.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
		mockImages.AssertNotCalled(t, "DeleteByProject", mock.Anything, mock.Anything)
	})
}
