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

import (
	"slices"
	"sort"
	"strings"

	"github.com/selera/menurec/core"
)

// Taste flavors get the full flavor bonus; consistency flavors (berkuah,
// kering) get the discounted one. Anything else scores zero but still counts
// toward satisfaction.
var tasteFlavors = map[string]bool{"pedas": true, "manis": true, "asam": true, "gurih": true}
var consistencyFlavors = map[string]bool{"berkuah": true, "kering": true}

// seafoodBonusProteins is the subset of seafood tags that trigger the seafood
// bonus. Narrower than the strict-query set.
var seafoodBonusProteins = []string{"seafood", "ikan", "udang", "cumi"}

// scoreRecord computes the full score breakdown of one candidate against the
// query. Pure and deterministic.
func (s *Searcher) scoreRecord(record *core.MenuRecord, queryClean string, queryFeatures core.FeatureSet, profile core.QueryRequirementProfile) core.ScoreBreakdown {
	breakdown := core.ScoreBreakdown{
		TotalRequirements: profile.TotalValues,
		MatchDetails:      map[string]core.MatchDetail{},
	}

	recordFeatures := s.extractor.Extract(record.FullText())

	breakdown.RelevanceScore = textRelevance(queryClean, record.Title, record.Ingredients, record.Description)

	var featureScore float64
	categoriesSatisfied := 0

	// Sorted categories keep score accumulation and logs reproducible.
	categories := make([]string, 0, len(queryFeatures))
	for category := range queryFeatures {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		required := queryFeatures[category]
		if len(required) == 0 {
			continue
		}

		var matched []string
		for _, tag := range required {
			if recordFeatures.Has(category, tag) {
				matched = append(matched, tag)
			}
		}

		breakdown.MatchDetails[category] = core.MatchDetail{
			Required:   required,
			Found:      recordFeatures[category],
			Matched:    matched,
			MatchRatio: float64(len(matched)) / float64(len(required)),
		}

		if len(matched) > 0 {
			breakdown.RequirementsMet += len(matched)
			featureScore += s.categoryBonus(category, matched)
			categoriesSatisfied++
		} else if profile.IsMultiValue {
			featureScore -= s.config.MissingValuePenalty * float64(len(required))
		}
	}

	if categoriesSatisfied > 0 && categoriesSatisfied == len(queryFeatures) {
		featureScore += s.config.PerfectCategoryBonus
	}

	breakdown.FeatureScore = featureScore
	breakdown.TotalScore = breakdown.RelevanceScore + featureScore

	if breakdown.TotalRequirements > 0 {
		breakdown.SatisfactionRatio = float64(breakdown.RequirementsMet) / float64(breakdown.TotalRequirements)
	} else {
		breakdown.SatisfactionRatio = 1.0
	}

	if profile.IsMultiValue || profile.IsMultiCategory {
		breakdown.Included = breakdown.SatisfactionRatio >= s.config.MultiSatisfactionThreshold &&
			breakdown.TotalScore >= s.config.MinScoreThreshold
	} else {
		breakdown.Included = (breakdown.SatisfactionRatio >= s.config.SingleSatisfactionThreshold ||
			breakdown.RelevanceScore >= s.config.SingleRelevanceThreshold) &&
			breakdown.TotalScore >= s.config.MinScoreThreshold*s.config.SingleScoreFactor
	}

	return breakdown
}

// categoryBonus returns the feature bonus for a category with at least one
// matched tag.
func (s *Searcher) categoryBonus(category string, matched []string) float64 {
	switch category {
	case core.CategoryProtein:
		switch {
		case slices.Contains(matched, "vegetarian"):
			return s.config.VegetarianBonus
		case containsAny(matched, seafoodBonusProteins):
			return s.config.SeafoodBonus
		case slices.Contains(matched, "sapi"):
			return s.config.ProteinBonus + s.config.BeefExtraBonus
		default:
			return s.config.ProteinBonus
		}
	case core.CategoryFlavor:
		var bonus float64
		for _, flavor := range matched {
			switch {
			case tasteFlavors[flavor]:
				bonus += s.config.FlavorBonus
			case consistencyFlavors[flavor]:
				bonus += s.config.FlavorBonus * s.config.SoftFlavorFactor
			}
		}
		return bonus
	case core.CategoryCookingMethod:
		return s.config.CookingMethodBonus
	case core.CategoryDishType:
		return s.config.DishTypeBonus
	case core.CategoryRegion:
		var bonus float64
		for _, region := range matched {
			if region == "padang" {
				bonus += s.config.RegionBonus + s.config.PadangExtraBonus
			} else {
				bonus += s.config.RegionBonus
			}
		}
		return bonus
	default:
		return s.config.OtherCategoryBonus
	}
}

// textRelevance scores direct word overlap between the query and the record
// fields. A query word counts once for its best field (title beats
// ingredients beats description); words longer than four characters also earn
// partial credit for appearing inside longer field words.
func textRelevance(queryClean, title, ingredients, description string) float64 {
	var relevance float64

	titleLower := strings.ToLower(title)
	ingredientsLower := strings.ToLower(ingredients)
	descriptionLower := strings.ToLower(description)

	for _, word := range strings.Fields(queryClean) {
		if len(word) <= 2 {
			continue
		}

		switch {
		case strings.Contains(titleLower, word):
			relevance += 50
		case strings.Contains(ingredientsLower, word):
			relevance += 25
		case strings.Contains(descriptionLower, word):
			relevance += 10
		}

		if len(word) > 4 {
			relevance += partialCredit(word, titleLower, 30)
			relevance += partialCredit(word, ingredientsLower, 15)
		}
	}

	return relevance
}

func partialCredit(word, text string, weight float64) float64 {
	var credit float64
	for _, fieldWord := range strings.Fields(text) {
		if len(fieldWord) > 4 && strings.Contains(fieldWord, word) {
			credit += weight * 0.5
		}
	}
	return credit
}

func containsAny(tags []string, wanted []string) bool {
	for _, w := range wanted {
		if slices.Contains(tags, w) {
			return true
		}
	}
	return false
}
