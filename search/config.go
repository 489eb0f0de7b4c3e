// Copyright 2025 Selera Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import "fmt"

// Config holds the fixed numeric parameters of scoring and ranking.
// The defaults are tuned for the bilingual food taxonomy; changing them
// changes ranking behavior, not correctness.
type Config struct {
	// MaxResults caps the ranked output.
	MaxResults int

	// MinScoreThreshold is the inclusion floor for multi-requirement queries.
	// Single-requirement queries use SingleScoreFactor of it.
	MinScoreThreshold float64

	// Feature bonuses per query category.
	ProteinBonus         float64
	VegetarianBonus      float64
	SeafoodBonus         float64
	BeefExtraBonus       float64 // Added on top of ProteinBonus for sapi matches
	CookingMethodBonus   float64
	FlavorBonus          float64
	DishTypeBonus        float64
	RegionBonus          float64
	PadangExtraBonus     float64 // Added on top of RegionBonus for padang matches
	OtherCategoryBonus   float64 // Fallback for categories without dedicated bonuses
	MissingValuePenalty  float64
	PerfectCategoryBonus float64

	// Inclusion thresholds by query shape.
	MultiSatisfactionThreshold  float64
	SingleSatisfactionThreshold float64
	SingleRelevanceThreshold    float64
	SingleScoreFactor           float64

	// SoftFlavorFactor discounts consistency-style flavors (berkuah, kering)
	// relative to taste flavors.
	SoftFlavorFactor float64
}

// DefaultConfig returns the production scoring parameters.
func DefaultConfig() *Config {
	return &Config{
		MaxResults:           8,
		MinScoreThreshold:    30,
		ProteinBonus:         50,
		VegetarianBonus:      60,
		SeafoodBonus:         55,
		BeefExtraBonus:       20,
		CookingMethodBonus:   35,
		FlavorBonus:          30,
		DishTypeBonus:        25,
		RegionBonus:          20,
		PadangExtraBonus:     15,
		OtherCategoryBonus:   20,
		MissingValuePenalty:  12,
		PerfectCategoryBonus: 35,

		MultiSatisfactionThreshold:  0.75,
		SingleSatisfactionThreshold: 0.3,
		SingleRelevanceThreshold:    40,
		SingleScoreFactor:           0.7,

		SoftFlavorFactor: 0.7,
	}
}

// Validate checks the configuration for values that would break ranking.
func (c *Config) Validate() error {
	if c.MaxResults <= 0 {
		return fmt.Errorf("%w: MaxResults must be positive", ErrInvalidConfig)
	}
	if c.MinScoreThreshold < 0 {
		return fmt.Errorf("%w: MinScoreThreshold must be non-negative", ErrInvalidConfig)
	}
	if c.MultiSatisfactionThreshold < 0 || c.MultiSatisfactionThreshold > 1 {
		return fmt.Errorf("%w: MultiSatisfactionThreshold must be in [0,1]", ErrInvalidConfig)
	}
	if c.SingleSatisfactionThreshold < 0 || c.SingleSatisfactionThreshold > 1 {
		return fmt.Errorf("%w: SingleSatisfactionThreshold must be in [0,1]", ErrInvalidConfig)
	}
	return nil
}
