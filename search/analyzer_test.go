package search

import (
	"testing"

	"github.com/selera/menurec/core"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequirements(t *testing.T) {
	tests := []struct {
		name     string
		features core.FeatureSet
		want     core.QueryRequirementProfile
	}{
		{
			name:     "empty",
			features: core.FeatureSet{},
			want:     core.QueryRequirementProfile{},
		},
		{
			name:     "single category single value",
			features: core.FeatureSet{core.CategoryProtein: {"ayam"}},
			want: core.QueryRequirementProfile{
				TotalCategories: 1,
				TotalValues:     1,
			},
		},
		{
			name: "multi category",
			features: core.FeatureSet{
				core.CategoryProtein:       {"ikan"},
				core.CategoryCookingMethod: {"bakar"},
				core.CategoryFlavor:        {"pedas"},
			},
			want: core.QueryRequirementProfile{
				TotalCategories: 3,
				TotalValues:     3,
				IsMultiCategory: true,
			},
		},
		{
			name: "multi value in one category",
			features: core.FeatureSet{
				core.CategoryFlavor: {"pedas", "manis"},
			},
			want: core.QueryRequirementProfile{
				TotalCategories: 1,
				TotalValues:     2,
				IsMultiValue:    true,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnalyzeRequirements(tc.features))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("rejects zero max results", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxResults = 0
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejects out-of-range thresholds", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MultiSatisfactionThreshold = 1.5
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}
