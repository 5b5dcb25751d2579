// ABOUTME: Tests for the typed API client
// ABOUTME: Runs against the real server wired to a temp database
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/db"
	"github.com/Jeonsowon/Portfolio-Project/models"
	"github.com/Jeonsowon/Portfolio-Project/web"
)

type stubGenerator struct{}

func (stubGenerator) ExtractKeywords(ctx context.Context, s ai.Sections) ([]ai.Keyword, error) {
	return []ai.Keyword{{Term: "Go", Weight: 0.9, Kind: ai.KindTech}}, nil
}

func (stubGenerator) GenerateSummary(ctx context.Context, req ai.SummaryRequest) (string, error) {
	return "stub summary", nil
}

func setupClient(t *testing.T) *Client {
	t.Helper()
	database, err := db.OpenDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	srv := httptest.NewServer(web.NewServer(database, stubGenerator{}, "test-secret").Handler())
	t.Cleanup(srv.Close)

	return New(srv.URL)
}

func TestAuthAndPortfolioRoundTrip(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	auth, err := c.Register(ctx, "Ann", "ann@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	c.SetToken(auth.Token)

	created, err := c.CreateDefault(ctx, models.KindBasic)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Len(t, created.Data.Projects, 1)

	doc := created.Data
	doc.Name = "Ann"
	doc.Role = "Dev"
	require.NoError(t, c.Save(ctx, created.ID, doc))

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Data.Name)

	list, err := c.ListMy(ctx)
	require.NoError(t, err)
	require.Len(t, list.Basic, 1)
	assert.Empty(t, list.Remodel)
	assert.Equal(t, "Ann - Dev", list.Basic[0].Title)

	require.NoError(t, c.Delete(ctx, created.ID))
	list, err = c.ListMy(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Len())
}

func TestUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	c := setupClient(t)
	c.SetToken("stale-token")

	fired := false
	c.OnUnauthorized = func() { fired = true }

	_, err := c.ListMy(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, fired, "the unauthorized hook must run on a 401")
	assert.Empty(t, c.token, "a rejected token must not be reused")
}

func TestNormalizeListGroupsBothShapes(t *testing.T) {
	flat := json.RawMessage(`[{"id":1,"kind":"BASIC","title":"A"},{"id":2,"kind":"REMODEL","title":"B"}]`)
	got, err := normalizeList(flat)
	require.NoError(t, err)
	require.Len(t, got.Basic, 1)
	require.Len(t, got.Remodel, 1)
	assert.Equal(t, int64(2), got.Remodel[0].ID)

	grouped := json.RawMessage(`{"basic":[{"id":1,"kind":"BASIC","title":"A"}],"remodel":[{"id":2,"kind":"REMODEL","title":"B"}]}`)
	got, err = normalizeList(grouped)
	require.NoError(t, err)
	require.Len(t, got.Basic, 1)
	require.Len(t, got.Remodel, 1)

	all := got.All()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID, "flattened order is BASIC before REMODEL")

	_, err = normalizeList(json.RawMessage(`"nonsense"`))
	assert.Error(t, err)
}

func TestBuildRemodelThroughClient(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	auth, err := c.Register(ctx, "Ann", "ann@example.com", "secret123")
	require.NoError(t, err)
	c.SetToken(auth.Token)

	created, err := c.CreateDefault(ctx, models.KindBasic)
	require.NoError(t, err)

	doc := created.Data
	doc.Skills = []models.Skill{{Name: "Photoshop"}, {Name: "Go"}}
	require.NoError(t, c.Save(ctx, created.ID, doc))

	remodel, err := c.BuildRemodel(ctx, created.ID, ai.SourceText, "ACME", "Requirements\n- Go experience\n")
	require.NoError(t, err)
	assert.Equal(t, models.KindRemodel, remodel.Kind)
	assert.Equal(t, "Go", remodel.Data.Skills[0].Name)

	summary, err := c.GenerateSummary(ctx, ai.SummaryRequest{Title: "Chat"})
	require.NoError(t, err)
	assert.Equal(t, "stub summary", summary)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"already registered"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.Register(context.Background(), "A", "a@example.com", "pw")
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "already registered", apiErr.Message)
}
