// ABOUTME: Tests for keyword normalization and portfolio reordering
// ABOUTME: Uses hand-built keyword sets, no model involved
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

func TestNormalizeKeywordsClampsAndDedups(t *testing.T) {
	got := NormalizeKeywords([]Keyword{
		{Term: "Go", Weight: 5.0, Kind: KindTech},
		{Term: "go", Weight: 0.05, Kind: KindTech},
		{Term: "  ", Weight: 0.5, Kind: KindTech},
		{Term: "Backend", Weight: 0.7, Kind: "bogus"},
	})

	assert.Len(t, got, 2)
	assert.Equal(t, "Go", got[0].Term)
	assert.Equal(t, 1.0, got[0].Weight, "weight above the range clamps to 1.0")
	assert.Equal(t, KindTech, got[1].Kind, "unknown kind defaults to TECH")
}

func TestNormalizeKeywordsKeepsHigherWeightDuplicate(t *testing.T) {
	got := NormalizeKeywords([]Keyword{
		{Term: "Redis", Weight: 0.4, Kind: KindTech},
		{Term: "redis", Weight: 0.9, Kind: KindTech},
	})

	assert.Len(t, got, 1)
	assert.Equal(t, 0.9, got[0].Weight)
}

func TestReorderSkillsByKeywordWeight(t *testing.T) {
	base := models.PortfolioData{
		Skills: []models.Skill{
			{Name: "Photoshop"},
			{Name: "Kafka"},
			{Name: "Spring Boot"},
		},
	}
	keywords := []Keyword{
		{Term: "Spring Boot", Weight: 0.9, Kind: KindTech},
		{Term: "Kafka", Weight: 0.5, Kind: KindTech},
	}

	got := Reorder(base, keywords)

	assert.Equal(t, "Spring Boot", got.Skills[0].Name)
	assert.Equal(t, "Kafka", got.Skills[1].Name)
	assert.Equal(t, "Photoshop", got.Skills[2].Name)
}

func TestReorderProjectsWeighsRoleAndStack(t *testing.T) {
	base := models.PortfolioData{
		Projects: []models.Project{
			{Title: "Chat service", Description: "WebSocket rooms", Techs: []string{"Redis"}, MyRole: "Frontend"},
			{Title: "Order backend", Description: "Payments with Kafka", Techs: []string{"Kafka", "MySQL"}, MyRole: "Backend"},
		},
	}
	keywords := []Keyword{
		{Term: "Backend", Weight: 0.8, Kind: KindRole},
		{Term: "Kafka", Weight: 0.9, Kind: KindTech},
	}

	got := Reorder(base, keywords)

	assert.Equal(t, "Order backend", got.Projects[0].Title)
}

func TestReorderCapsAndPreservesOtherFields(t *testing.T) {
	base := models.PortfolioData{Name: "Ann", Introduction: "hello"}
	for i := 0; i < 20; i++ {
		base.Skills = append(base.Skills, models.Skill{Name: "skill"})
	}
	for i := 0; i < 10; i++ {
		base.Projects = append(base.Projects, models.Project{Title: "p"})
	}

	got := Reorder(base, nil)

	assert.Len(t, got.Skills, maxRemodelSkills)
	assert.Len(t, got.Projects, maxRemodelProjects)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "hello", got.Introduction)
	assert.Len(t, base.Skills, 20, "input document must not be mutated")
}

func TestReorderIsStableForUnmatchedEntries(t *testing.T) {
	base := models.PortfolioData{
		Skills: []models.Skill{{Name: "A"}, {Name: "B"}, {Name: "C"}},
	}

	got := Reorder(base, []Keyword{{Term: "zzz", Weight: 1.0, Kind: KindTech}})

	assert.Equal(t, "A", got.Skills[0].Name)
	assert.Equal(t, "B", got.Skills[1].Name)
	assert.Equal(t, "C", got.Skills[2].Name)
}

func TestReorderSortsSecondarySectionsByKeywordText(t *testing.T) {
	base := models.PortfolioData{
		Experiences: []models.Experience{
			{Company: "Design Studio", Description: "Illustration work"},
			{Company: "Data Corp", Description: "Built Kafka pipelines", Techs: []string{"Kafka"}},
		},
	}
	keywords := []Keyword{{Term: "Kafka", Weight: 0.9, Kind: KindTech}}

	got := Reorder(base, keywords)

	assert.Equal(t, "Data Corp", got.Experiences[0].Company)
	assert.Len(t, got.Experiences, 2, "secondary sections are reordered, never cut")
}

func TestContainsTokenPunctuationVariants(t *testing.T) {
	assert.True(t, containsToken("spring-boot", "Spring Boot"))
	assert.True(t, containsToken("Spring Boot", "spring boot"))
	assert.False(t, containsToken("Spring Boot", "Kafka"))
	assert.True(t, containsToken("백엔드 개발", "백엔드"))
}
