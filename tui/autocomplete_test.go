// ABOUTME: Tests for the skill autocomplete state machine
package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeonsowon/Portfolio-Project/catalog"
)

func TestRefreshCapsSuggestions(t *testing.T) {
	var a autocomplete
	a = a.refresh("a")

	require.True(t, a.open())
	assert.LessOrEqual(t, len(a.suggestions), catalog.MaxSuggestions)
	assert.Equal(t, -1, a.highlight, "refresh should reset the highlight")
}

func TestRefreshEmptyQueryCloses(t *testing.T) {
	var a autocomplete
	a = a.refresh("go").refresh("")
	assert.False(t, a.open())
}

func TestHighlightWrapsBothDirections(t *testing.T) {
	var a autocomplete
	a = a.refresh("java") // Java, JavaScript
	require.GreaterOrEqual(t, len(a.suggestions), 2)
	n := len(a.suggestions)

	a = a.moveDown()
	assert.Equal(t, 0, a.highlight)

	for i := 0; i < n; i++ {
		a = a.moveDown()
	}
	assert.Equal(t, 0, a.highlight, "moving down past the end wraps to the top")

	a = a.moveUp()
	assert.Equal(t, n-1, a.highlight, "moving up from the top wraps to the bottom")
}

func TestMoveOnClosedListIsNoop(t *testing.T) {
	var a autocomplete
	a = a.closed().moveDown().moveUp()
	assert.False(t, a.open())
	assert.Equal(t, -1, a.highlight)
}

func TestCommitPrefersHighlightedSuggestion(t *testing.T) {
	var a autocomplete
	a = a.refresh("java").moveDown().moveDown() // JavaScript

	skill, ok := a.commit("java")
	require.True(t, ok)
	assert.Equal(t, "JavaScript", skill.Name)
	assert.NotEmpty(t, skill.Icon)
}

func TestCommitWithoutHighlightResolvesTypedText(t *testing.T) {
	var a autocomplete
	a = a.refresh("go")

	skill, ok := a.commit("go")
	require.True(t, ok)
	assert.Equal(t, "Go", skill.Name, "typed text resolves to the canonical catalog entry")
}

func TestCommitUnknownTextKeepsItWithoutIcon(t *testing.T) {
	var a autocomplete

	skill, ok := a.commit("Assembly 8086")
	require.True(t, ok)
	assert.Equal(t, "Assembly 8086", skill.Name)
	assert.Empty(t, skill.Icon)
}

func TestCommitBlankTextFails(t *testing.T) {
	var a autocomplete
	_, ok := a.commit("   ")
	assert.False(t, ok)
}
