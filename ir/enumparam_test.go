package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumParameterInfoDefaults(t *testing.T) {
	p := NewEnumParameterInfo("status", "active", "archived")

	assert.Equal(t, "status", p.Name)
	assert.Equal(t, "string", p.Type)
	assert.Equal(t, []any{"active", "archived"}, p.Values)
	assert.True(t, p.Required)
	assert.Equal(t, LocationPath, p.In)
	assert.Empty(t, p.EnumClass)
}

func TestEnumParameterInfoPredicates(t *testing.T) {
	t.Run("location", func(t *testing.T) {
		p := NewEnumParameterInfo("id")
		assert.True(t, p.IsPath())
		assert.False(t, p.IsQuery())

		p.In = LocationQuery
		assert.False(t, p.IsPath())
		assert.True(t, p.IsQuery())
	})

	t.Run("backing type", func(t *testing.T) {
		p := NewEnumParameterInfo("level")
		assert.True(t, p.IsStringBacked())
		assert.False(t, p.IsIntegerBacked())

		p.Type = EnumBackingInteger.OpenAPIType()
		assert.False(t, p.IsStringBacked())
		assert.True(t, p.IsIntegerBacked())
	})
}

func TestEnumParameterInfoFromKeyed(t *testing.T) {
	t.Run("defaults applied for missing fields", func(t *testing.T) {
		p := EnumParameterInfoFromKeyed(Keyed{"name": "status"})

		assert.Equal(t, "status", p.Name)
		assert.Equal(t, "string", p.Type)
		assert.True(t, p.Required)
		assert.Empty(t, p.Description)
		assert.Equal(t, LocationPath, p.In)
	})

	t.Run("integer literals preserved in order", func(t *testing.T) {
		p := EnumParameterInfoFromKeyed(Keyed{
			"name": "level",
			"type": "integer",
			"enum": []any{3, 1, 2},
			"in":   "query",
		})

		assert.Equal(t, []any{3, 1, 2}, p.Values)
		assert.True(t, p.IsIntegerBacked())
		assert.True(t, p.IsQuery())
	})

	t.Run("explicit optional flag", func(t *testing.T) {
		p := EnumParameterInfoFromKeyed(Keyed{"name": "sort", "required": false})
		assert.False(t, p.Required)
	})
}

func TestEnumParameterInfoRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		param EnumParameterInfo
	}{
		{"defaults", NewEnumParameterInfo("status", "active", "archived")},
		{
			"fully specified",
			EnumParameterInfo{
				Name:        "level",
				Type:        "integer",
				Values:      []any{1, 2, 3},
				Required:    false,
				Description: "Access level",
				In:          LocationQuery,
				EnumClass:   "AccessLevel",
			},
		},
		{"no values", NewEnumParameterInfo("kind")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.param, EnumParameterInfoFromKeyed(tt.param.ToKeyed()))
		})
	}
}
