package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"assomap/internal/cache"
	domainerrors "assomap/internal/errors"
	"assomap/internal/model"
	"assomap/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user directory operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListUserProjects(ctx context.Context, id uint) ([]model.Project, error)
	// UpdateUser replaces every profile field; a non-empty password is
	// rehashed, an empty one keeps the stored hash.
	UpdateUser(ctx context.Context, id uint, user *model.User, password string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo        repository.UserRepository
	projectRepo repository.ProjectRepository
	imageRepo   repository.ImageRepository
	cache       *cache.Client

	// cascadeProjects removes the user's projects (and their image rows)
	// on user deletion; when unset projects are orphaned, preserving the
	// legacy behavior.
	cascadeProjects bool
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(repo repository.UserRepository, projectRepo repository.ProjectRepository, imageRepo repository.ImageRepository, cache *cache.Client, cascadeProjects bool) UserService {
	return &userService{
		repo:            repo,
		projectRepo:     projectRepo,
		imageRepo:       imageRepo,
		cache:           cache,
		cascadeProjects: cascadeProjects,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("utilisateur:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) ListUserProjects(ctx context.Context, id uint) ([]model.Project, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return s.projectRepo.FindByUser(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, user *model.User, password string) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}

	user.ID = existing.ID
	user.MotDePasse = existing.MotDePasse
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.MotDePasse = string(hashed)
	}
	if user.Role == "" {
		user.Role = existing.Role
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if s.cascadeProjects {
		projects, err := s.projectRepo.FindByUser(ctx, id)
		if err != nil {
			return fmt.Errorf("list user projects: %w", err)
		}
		for _, p := range projects {
			if err := s.imageRepo.DeleteByProject(ctx, p.ID); err != nil {
				return fmt.Errorf("delete images of project %d: %w", p.ID, err)
			}
		}
		if err := s.projectRepo.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("delete user projects: %w", err)
		}
		_ = s.cache.Delete(ctx, projectListCacheKey)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
