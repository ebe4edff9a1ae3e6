package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Persona
	}{
		{"ika", Ika},
		{"IKA", Ika},
		{" IkaBrain ", Ika},
		{"genesis", Genesis},
		{"TheGenesis", Genesis},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := Parse("shadow")
	assert.ErrorIs(t, err, ErrUnknownPersona)
	assert.Equal(t, Genesis, ParseOr("", Genesis))
}

func TestSelector_SetIsIdempotent(t *testing.T) {
	s := NewSelector(Ika)

	assert.False(t, s.Set(Ika))
	assert.Equal(t, Ika, s.Current())

	assert.True(t, s.Set(Genesis))
	assert.False(t, s.Set(Genesis))
	assert.Equal(t, Genesis, s.Current())

	assert.False(t, s.Set("nope"))
	assert.Equal(t, Genesis, s.Current())
}

func TestSelector_Toggle(t *testing.T) {
	s := NewSelector("")
	assert.Equal(t, Default, s.Current())
	assert.Equal(t, Genesis, s.Toggle())
	assert.Equal(t, Ika, s.Toggle())
}

func TestFilter(t *testing.T) {
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
	assert.Equal(t, FilterGenesis, ParseFilter("TheGenesis"))

	assert.True(t, FilterAll.Match(Ika))
	assert.True(t, FilterAll.Match(Genesis))
	assert.True(t, FilterIka.Match(Ika))
	assert.False(t, FilterIka.Match(Genesis))
	assert.Equal(t, "TheGenesis", FilterGenesis.Label())
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "text-cyan-400", Ika.Theme().Accent)
	assert.Equal(t, "#8b5cf6", Genesis.Theme().Hex)
	assert.Equal(t, ThemeFor(Default), ThemeFor("unknown"))
}
