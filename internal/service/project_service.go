package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"assomap/internal/cache"
	domainerrors "assomap/internal/errors"
	"assomap/internal/model"
	"assomap/internal/repository"
)

const (
	projectListCacheKey = "projets:all"
	projectListCacheTTL = 5 * time.Minute
)

// ProjectInput carries a create/replace request. Numeric fields are
// pointers so an absent field is distinguishable from a legitimate zero
// (coordinate 0 or budget 0) when building the missing-field list.
type ProjectInput struct {
	Nom           string           `json:"nom"`
	Description   string           `json:"description"`
	Longitude     *float64         `json:"longitude"`
	Latitude      *float64         `json:"latitude"`
	UtilisateurID *uint            `json:"utilisateur_id"`
	DateDebut     string           `json:"date_debut"`
	Budget        *decimal.Decimal `json:"budget"`
	Categorie     string           `json:"categorie"`
	Localisation  string           `json:"localisation"`
}

// missingFields returns the names of required fields that are absent or
// blank, in the legacy field order.
func (in ProjectInput) missingFields() []string {
	var missing []string
	check := func(name string, present bool) {
		if !present {
			missing = append(missing, name)
		}
	}
	check("nom", in.Nom != "")
	check("description", in.Description != "")
	check("longitude", in.Longitude != nil)
	check("latitude", in.Latitude != nil)
	check("utilisateur_id", in.UtilisateurID != nil)
	check("date_debut", in.DateDebut != "")
	check("budget", in.Budget != nil)
	check("categorie", in.Categorie != "")
	check("localisation", in.Localisation != "")
	return missing
}

func (in ProjectInput) validate() error {
	if missing := in.missingFields(); len(missing) > 0 {
		return &domainerrors.MissingFieldsError{Fields: missing}
	}
	if in.Budget.IsNegative() {
		return domainerrors.ErrNegativeBudget
	}
	return nil
}

func (in ProjectInput) toModel() *model.Project {
	return &model.Project{
		Nom:           in.Nom,
		Description:   in.Description,
		Longitude:     *in.Longitude,
		Latitude:      *in.Latitude,
		UtilisateurID: *in.UtilisateurID,
		DateDebut:     in.DateDebut,
		Budget:        *in.Budget,
		Categorie:     in.Categorie,
		Localisation:  in.Localisation,
	}
}

// ProjectService exposes project directory operations.
type ProjectService interface {
	CreateProject(ctx context.Context, input ProjectInput) (*model.Project, error)
	GetProject(ctx context.Context, id uint) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListProjectImages(ctx context.Context, id uint) ([]model.Image, error)
	// UpdateProject is a full-field replacement, not a partial patch.
	UpdateProject(ctx context.Context, id uint, input ProjectInput) (*model.Project, error)
	DeleteProject(ctx context.Context, id uint) error
}

type projectService struct {
	repo      repository.ProjectRepository
	imageRepo repository.ImageRepository
	cache     *cache.Client

	// cascadeImages removes a project's image rows when the project is
	// deleted; when unset the rows are orphaned, as the legacy store did.
	cascadeImages bool
}

// NewProjectService builds a ProjectService with repositories and cache.
func NewProjectService(repo repository.ProjectRepository, imageRepo repository.ImageRepository, cache *cache.Client, cascadeImages bool) ProjectService {
	return &projectService{
		repo:          repo,
		imageRepo:     imageRepo,
		cache:         cache,
		cascadeImages: cascadeImages,
	}
}

func (s *projectService) CreateProject(ctx context.Context, input ProjectInput) (*model.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	project := input.toModel()
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// ListProjects returns every project with images, cache-aside.
func (s *projectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectListCacheKey, payload, projectListCacheTTL)
	}
	return projects, nil
}

func (s *projectService) ListProjectImages(ctx context.Context, id uint) ([]model.Image, error) {
	if _, err := s.GetProject(ctx, id); err != nil {
		return nil, err
	}
	return s.imageRepo.FindByProject(ctx, id)
}

func (s *projectService) UpdateProject(ctx context.Context, id uint, input ProjectInput) (*model.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project := input.toModel()
	project.ID = existing.ID
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id uint) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}

	if s.cascadeImages {
		if err := s.imageRepo.DeleteByProject(ctx, id); err != nil {
			return fmt.Errorf("delete project images: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	_ = s.cache.Delete(ctx, projectListCacheKey)
	return nil
}
