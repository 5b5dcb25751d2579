// ABOUTME: Tests for preview document resolution
// ABOUTME: Exercises the priority chain and the partial-document merge
package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

func fetchOK(name string) Fetcher {
	return func(id int64) (models.PortfolioData, error) {
		d := models.Default()
		d.Name = name
		return d, nil
	}
}

func fetchFail(id int64) (models.PortfolioData, error) {
	return models.PortfolioData{}, errors.New("gone")
}

func draftWith(name string) DraftLoader {
	return func(id *int64) (models.PortfolioData, bool) {
		d := models.Default()
		d.Name = name
		return d, true
	}
}

func noDraft(id *int64) (models.PortfolioData, bool) {
	return models.PortfolioData{}, false
}

func TestNavigationDataBeatsEverything(t *testing.T) {
	id := int64(9)
	nav := models.PortfolioData{Name: "handed over"}

	res := Resolve(&nav, &id, nil, fetchOK("server"), draftWith("draft"))

	assert.Equal(t, FromNavigation, res.Source)
	assert.Equal(t, "handed over", res.Doc.Name)
	require.NotNil(t, res.ID)
	assert.Equal(t, id, *res.ID)
}

func TestNavigationPartialIsMergedOverTemplate(t *testing.T) {
	nav := models.PortfolioData{Name: "only a name"}

	res := Resolve(&nav, nil, nil, nil, noDraft)

	// Fields absent from the handoff keep their template values.
	assert.Equal(t, "only a name", res.Doc.Name)
	assert.Len(t, res.Doc.Projects, 1, "template placeholder project should survive")

	// A present list replaces the template's wholesale.
	nav2 := models.PortfolioData{Projects: []models.Project{}}
	res2 := Resolve(&nav2, nil, nil, nil, noDraft)
	assert.Empty(t, res2.Doc.Projects)
}

func TestDraftBeatsServerCopy(t *testing.T) {
	id := int64(4)

	res := Resolve(nil, nil, &id, fetchOK("server"), draftWith("draft"))

	assert.Equal(t, FromDraft, res.Source)
	assert.Equal(t, "draft", res.Doc.Name)
}

func TestDraftPartialIsMergedOverTemplate(t *testing.T) {
	skillsOnly := func(id *int64) (models.PortfolioData, bool) {
		return models.PortfolioData{Skills: []models.Skill{{Name: "Go"}}}, true
	}

	res := Resolve(nil, nil, nil, nil, skillsOnly)

	assert.Equal(t, FromDraft, res.Source)
	require.Len(t, res.Doc.Skills, 1)
	assert.Equal(t, "Go", res.Doc.Skills[0].Name)
	assert.Len(t, res.Doc.Projects, 1, "template placeholder project should survive")
}

func TestServerCopyWhenNoDraft(t *testing.T) {
	id := int64(4)

	res := Resolve(nil, nil, &id, fetchOK("server"), noDraft)

	assert.Equal(t, FromServer, res.Source)
	assert.Equal(t, "server", res.Doc.Name)
}

func TestFetchFailureFallsBackToTemplate(t *testing.T) {
	id := int64(4)

	res := Resolve(nil, &id, nil, fetchFail, noDraft)

	assert.Equal(t, Default, res.Source)
	assert.Len(t, res.Doc.Projects, 1)
}

func TestNoIDNoDraftYieldsTemplate(t *testing.T) {
	res := Resolve(nil, nil, nil, nil, noDraft)

	assert.Equal(t, Default, res.Source)
	assert.Nil(t, res.ID)
	assert.True(t, res.Doc.Name == "" && len(res.Doc.Projects) == 1)
}

func TestEffectiveIDPrefersNavigation(t *testing.T) {
	navID, queryID := int64(1), int64(2)

	assert.Equal(t, &navID, EffectiveID(&navID, &queryID))
	assert.Equal(t, &queryID, EffectiveID(nil, &queryID))
	assert.Nil(t, EffectiveID(nil, nil))
}
