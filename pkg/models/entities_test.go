package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityGroupOrdering(t *testing.T) {
	g := NewEntityGroup()
	g.Add("person", "Alice")
	g.Add("location", "Paris")
	g.Add("person", "Bob")
	g.Add("person", "Alice")

	assert.Equal(t, []string{"person", "location"}, g.Types())
	assert.Equal(t, []string{"Alice", "Bob", "Alice"}, g.Entities("person"))
	assert.Equal(t, []string{"Paris"}, g.Entities("location"))
	assert.Equal(t, 2, g.Len())
	assert.False(t, g.IsEmpty())

	assert.Equal(t, []EntityPair{
		{"person", "Alice"},
		{"person", "Bob"},
		{"person", "Alice"},
		{"location", "Paris"},
	}, g.Pairs())
}

func TestEntityGroupDropsEmpty(t *testing.T) {
	var g EntityGroup
	g.Add("", "Alice")
	g.Add("person", "")

	assert.True(t, g.IsEmpty())
	assert.Nil(t, g.Pairs())
	assert.Empty(t, g.Types())
}

func TestNilEntityGroup(t *testing.T) {
	var g *EntityGroup
	assert.True(t, g.IsEmpty())
	assert.Nil(t, g.Entities("person"))
	assert.Nil(t, g.Types())
}

func TestUnknownClassifierError(t *testing.T) {
	err := NewUnknownClassifierError("german")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualError(t, err, `unknown classifier "german"`)
}
