package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchProjectsDecodesUnionKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projets", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"nom":"Voile Bonheur","latitude":43.433,"longitude":6.733,"Images":[{"id":1,"url":"https://cdn/voile.jpg","isMain":true}]},
			{"id":2,"nom":"Atelier Vélo","images":[{"id":3,"url":"images/velo.jpg"}]}
		]`))
	}))
	defer srv.Close()

	records, err := New(srv.URL).FetchProjects(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "https://cdn/voile.jpg", records[0].Images[0].URL)
	assert.Equal(t, "images/velo.jpg", records[1].Images[0].URL)
	assert.True(t, records[0].HasCoordinates())
	assert.False(t, records[1].HasCoordinates())
}

func TestFetchProjectsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Erreur interne"}`))
	}))
	defer srv.Close()

	records, err := New(srv.URL).FetchProjects(context.Background())

	assert.Nil(t, records)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Erreur interne", apiErr.Message)
}

func TestFetchProjectsNonArrayBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	records, err := New(srv.URL).FetchProjects(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, records)
}

// A fetch that resolves after a newer fetch was issued must be discarded.
func TestFetchProjectsStaleResponseDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var requests int
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		n := requests
		mu.Unlock()
		if n == 1 {
			close(firstArrived)
			<-releaseFirst // hold the first response until the second fetch finished
		}
		_, _ = w.Write([]byte(`[{"id":` + map[int]string{1: "1", 2: "2"}[n] + `,"nom":"p"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = c.FetchProjects(context.Background())
	}()

	<-firstArrived
	records, err := c.FetchProjects(context.Background())
	close(releaseFirst)
	wg.Wait()

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, uint(2), records[0].ID)
	assert.ErrorIs(t, firstErr, ErrStale)
}
