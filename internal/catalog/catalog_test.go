package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Same(t, c, Default())

	names := c.Names()
	assert.Equal(t, c.Len(), len(names))
	assert.Contains(t, names, "Barbell Bench Press")
	assert.Contains(t, names, "Push-Up (Bodyweight)")

	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate name %q", n)
		seen[n] = true
	}

	// every common and bodyweight name is part of the full list
	for _, n := range c.CommonNames() {
		assert.True(t, seen[n], n)
	}
	for _, n := range bodyweightExercises {
		assert.True(t, seen[n], n)
	}
}

func TestCatalog_NamesReturnsCopy(t *testing.T) {
	c := New([]string{"A", "B"}, nil, nil)
	names := c.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"A", "B"}, c.Names())
}

func TestCatalog_New(t *testing.T) {
	c := New(
		[]string{"Squat", "Squat", "", "Row"},
		[]string{"Push-Up (Bodyweight)"},
		[]string{"Bench"},
	)
	assert.Equal(t, []string{"Squat", "Row", "Bench", "Push-Up (Bodyweight)"}, c.Names())
	assert.Equal(t, []string{"Bench"}, c.CommonNames())
}

func TestIsBodyweightExercise(t *testing.T) {
	assert.True(t, IsBodyweightExercise("Push-Up (Bodyweight)"))
	assert.True(t, IsBodyweightExercise("push-up (BODYWEIGHT)"))
	assert.False(t, IsBodyweightExercise(" Pull-Up (Bodyweight) "), "surrounding whitespace is not ignored")
	assert.True(t, IsBodyweightExercise("Pull-Up (Bodyweight)"))
	assert.False(t, IsBodyweightExercise("Barbell Squat"))
	assert.False(t, IsBodyweightExercise("Push-Up"))
	assert.False(t, IsBodyweightExercise(""))
}
