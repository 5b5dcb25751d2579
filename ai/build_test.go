// ABOUTME: Tests for the remodel build pipeline
// ABOUTME: Stubs the generator; the posting comes from an httptest server
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

type stubGenerator struct {
	keywords []Keyword
	err      error
	summary  string
	calls    int
}

func (s *stubGenerator) ExtractKeywords(ctx context.Context, sections Sections) ([]Keyword, error) {
	s.calls++
	return s.keywords, s.err
}

func (s *stubGenerator) GenerateSummary(ctx context.Context, req SummaryRequest) (string, error) {
	return s.summary, s.err
}

func baseDoc() models.PortfolioData {
	return models.PortfolioData{
		Name: "Ann",
		Role: "Backend Developer",
		Skills: []models.Skill{
			{Name: "Photoshop"},
			{Name: "Kafka"},
		},
		Projects: []models.Project{
			{Title: "Design system", MyRole: "Design"},
			{Title: "Order backend", Techs: []string{"Kafka"}, MyRole: "Backend"},
		},
	}
}

const postingHTML = `<html><head><style>body{}</style></head><body>
<h2>Requirements</h2>
<ul><li>Kafka experience</li><li>Backend development</li></ul>
<h2>Preferred</h2>
<ul><li>AWS</li></ul>
</body></html>`

func TestBuildRemodelFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, postingHTML)
	}))
	t.Cleanup(srv.Close)

	gen := &stubGenerator{keywords: []Keyword{
		{Term: "Kafka", Weight: 0.9, Kind: KindTech},
		{Term: "Backend", Weight: 0.8, Kind: KindRole},
	}}

	got, err := BuildRemodel(context.Background(), gen, baseDoc(), SourceURL, srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Kafka", got.Skills[0].Name)
	assert.Equal(t, "Order backend", got.Projects[0].Title)
	assert.Equal(t, "Ann", got.Name)
}

func TestBuildRemodelFromText(t *testing.T) {
	gen := &stubGenerator{keywords: []Keyword{{Term: "Kafka", Weight: 0.9, Kind: KindTech}}}

	got, err := BuildRemodel(context.Background(), gen, baseDoc(), SourceText,
		"Requirements\n- Kafka experience\n")
	require.NoError(t, err)
	assert.Equal(t, "Kafka", got.Skills[0].Name)
}

func TestBuildRemodelNoSections(t *testing.T) {
	gen := &stubGenerator{}

	_, err := BuildRemodel(context.Background(), gen, baseDoc(), SourceText, "We are a great company.")
	require.ErrorIs(t, err, ErrNoSections)
	assert.Equal(t, 0, gen.calls, "the model must not be called without sections")
}

func TestBuildRemodelFallsBackOnExtractionFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model down")}

	got, err := BuildRemodel(context.Background(), gen, baseDoc(), SourceText,
		"Requirements\n- anything\n")
	require.NoError(t, err, "extraction failure must degrade, not abort")
	assert.Len(t, got.Skills, 2, "document still comes back reordered with fallback keywords")
}

func TestBuildRemodelRejectsUnknownSource(t *testing.T) {
	_, err := BuildRemodel(context.Background(), &stubGenerator{}, baseDoc(), "carrier-pigeon", "x")
	require.Error(t, err)
}

func TestBuildRemodelFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := BuildRemodel(context.Background(), &stubGenerator{}, baseDoc(), SourceURL, srv.URL)
	require.Error(t, err)
}
