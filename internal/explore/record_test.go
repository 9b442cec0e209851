package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assomap/internal/model"
)

func TestDecodeRecordsUnionImageKey(t *testing.T) {
	tests := []struct {
		name string
		body string
		urls []string
	}{
		{
			"uppercase Images key",
			`[{"id":1,"nom":"Voile Bonheur","Images":[{"id":1,"url":"https://cdn/voile.jpg","isMain":true}]}]`,
			[]string{"https://cdn/voile.jpg"},
		},
		{
			"lowercase images key",
			`[{"id":1,"nom":"Voile Bonheur","images":[{"id":1,"url":"https://cdn/voile.jpg"}]}]`,
			[]string{"https://cdn/voile.jpg"},
		},
		{
			"no image key at all",
			`[{"id":1,"nom":"Voile Bonheur"}]`,
			nil,
		},
		{
			"empty collection",
			`[{"id":1,"nom":"Voile Bonheur","Images":[]}]`,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := DecodeRecords([]byte(tt.body))

			assert.Len(t, records, 1)
			var urls []string
			for _, img := range records[0].Images {
				urls = append(urls, img.URL)
			}
			assert.Equal(t, tt.urls, urls)
		})
	}
}

func TestDecodeRecordsNonArrayShortCircuits(t *testing.T) {
	assert.Empty(t, DecodeRecords([]byte(`{"message":"Erreur interne"}`)))
	assert.Empty(t, DecodeRecords([]byte(`"not json at all`)))
	assert.Empty(t, DecodeRecords([]byte(`42`)))
}

func TestDecodeRecordsMissingCoordinates(t *testing.T) {
	records := DecodeRecords([]byte(`[{"id":1,"nom":"a","latitude":43.7,"longitude":7.26},{"id":2,"nom":"b"}]`))

	assert.Len(t, records, 2)
	assert.True(t, records[0].HasCoordinates())
	assert.False(t, records[1].HasCoordinates())
}

func TestFromModelCarriesImagesAndCoordinates(t *testing.T) {
	p := model.Project{
		ID:        4,
		Nom:       "Musée Dinosaures",
		Latitude:  43.580,
		Longitude: 6.100,
		Categorie: "Culture",
		Images: []model.Image{
			{ID: 6, URL: "https://cdn/raptor_museum.jpg", IsMain: true},
			{ID: 7, URL: "https://cdn/inauguration.jpg"},
		},
	}

	rec := FromModel(p)

	assert.True(t, rec.HasCoordinates())
	assert.Equal(t, 43.580, *rec.Latitude)
	assert.Len(t, rec.Images, 2)
	assert.True(t, rec.Images[0].IsMain)
}
