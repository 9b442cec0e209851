package service

import (
	"context"
	"math/rand"
	"time"

	"assomap/internal/explore"
)

// ExploreResult is the map screen payload: markers carry every project
// matching text and category, items the subset inside the viewport.
type ExploreResult struct {
	Markers []explore.ViewModel `json:"markers"`
	Items   []explore.ViewModel `json:"items"`
}

// ExploreService runs the shaping and filtering pipeline over the stored
// project set.
type ExploreService interface {
	Explore(ctx context.Context, query, category string, region *explore.Region) (*ExploreResult, error)
}

type exploreService struct {
	projects   ProjectService
	baseOrigin string
}

// NewExploreService builds an ExploreService on top of the cached project
// listing.
func NewExploreService(projects ProjectService, baseOrigin string) ExploreService {
	return &exploreService{projects: projects, baseOrigin: baseOrigin}
}

func (s *exploreService) Explore(ctx context.Context, query, category string, region *explore.Region) (*ExploreResult, error) {
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	records := explore.FromModels(projects)
	// One rng per call: jitter is stable within a result and free to vary
	// between fetches.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	shaped := explore.Shape(records, s.baseOrigin, rng)

	result := &ExploreResult{
		Markers: []explore.ViewModel{},
		Items:   []explore.ViewModel{},
	}
	for i, r := range records {
		if !r.HasCoordinates() || !explore.MatchesText(r, query) || !explore.MatchesCategory(r, category) {
			continue
		}
		result.Markers = append(result.Markers, shaped[i])
		if region == nil || region.Contains(*r.Latitude, *r.Longitude) {
			result.Items = append(result.Items, shaped[i])
		}
	}
	return result, nil
}
