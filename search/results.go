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
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/selera/menurec/core"
)

// categoryLabelProteins maps matched protein tags to the seafood class when
// labeling results.
var categoryLabelSeafood = []string{"seafood", "ikan", "udang", "cumi"}

// describeSeafood additionally folds kepiting into the seafood class when
// describing queries.
var describeSeafood = []string{"seafood", "ikan", "udang", "cumi", "kepiting"}

// Recommend runs the pipeline and shapes the matches into presentation-ready
// items with quality labels, category labels and formatted prices.
func (s *Searcher) Recommend(query string, records []core.MenuRecord) []core.RecommendedItem {
	result := s.Search(query, records)
	return s.shapeMatches(result)
}

// shapeMatches converts ranked matches into RecommendedItems.
func (s *Searcher) shapeMatches(result *Result) []core.RecommendedItem {
	items := make([]core.RecommendedItem, 0, len(result.Matches))

	totalRequired := result.Profile.TotalValues
	if totalRequired == 0 {
		totalRequired = 1
	}

	for i, match := range result.Matches {
		rank := i + 1
		satisfied := match.Breakdown.RequirementsMet
		matchRatio := float64(satisfied) / float64(totalRequired)

		quality, accuracy := qualityLabel(
			rank, matchRatio,
			result.VegetarianQuery, result.SeafoodQuery, result.Profile.IsMultiValue,
		)

		items = append(items, core.RecommendedItem{
			Id:                match.Record.Id,
			Title:             match.Record.Title,
			Ingredients:       match.Record.Ingredients,
			Description:       match.Record.Description,
			Price:             core.FormatPrice(match.Record.NumericPrice),
			NumericPrice:      match.Record.NumericPrice,
			Image:             match.Record.Image,
			Category:          s.CategoryFromTitle(match.Record.Title),
			QualityLabel:      quality,
			AccuracyLevel:     accuracy,
			CriteriaSatisfied: satisfied,
			TotalCriteria:     totalRequired,
			MatchRatio:        matchRatio,
			Rank:              rank,
			IsVegetarian:      result.VegetarianQuery,
			IsSeafood:         result.SeafoodQuery,
			IsMultiValue:      result.Profile.IsMultiValue,
		})
	}

	return items
}

// qualityLabel derives the quality label and accuracy level for one result.
func qualityLabel(rank int, matchRatio float64, vegetarian, seafood, multiValue bool) (string, string) {
	switch {
	case seafood:
		if matchRatio >= 0.8 {
			return fmt.Sprintf("Perfect Seafood Match (Rank #%d)", rank), "Perfect Seafood"
		}
		return fmt.Sprintf("Good Seafood Match (Rank #%d)", rank), "Good Seafood"
	case vegetarian:
		if matchRatio >= 0.8 {
			return fmt.Sprintf("Perfect Vegetarian Match (Rank #%d)", rank), "Perfect Vegetarian"
		}
		return fmt.Sprintf("Good Vegetarian Match (Rank #%d)", rank), "Good Vegetarian"
	case multiValue:
		switch {
		case matchRatio >= 0.9:
			return fmt.Sprintf("Excellent Multi-Criteria Match (Rank #%d)", rank), "Excellent Multi-Value"
		case matchRatio >= 0.7:
			return fmt.Sprintf("Good Multi-Criteria Match (Rank #%d)", rank), "Good Multi-Value"
		default:
			return fmt.Sprintf("Partial Multi-Criteria Match (Rank #%d)", rank), "Partial Multi-Value"
		}
	default:
		if matchRatio >= 0.8 {
			return fmt.Sprintf("Perfect Match (Rank #%d)", rank), "Perfect"
		}
		return fmt.Sprintf("Good Match (Rank #%d)", rank), "Good"
	}
}

// CategoryFromTitle derives a single category label from a menu title:
// the protein class when present, then the first dish type, then "makanan".
func (s *Searcher) CategoryFromTitle(title string) string {
	features := s.extractor.Extract(title)

	if proteins := features[core.CategoryProtein]; len(proteins) > 0 {
		switch {
		case slices.Contains(proteins, "vegetarian"):
			return "vegetarian"
		case containsAny(proteins, categoryLabelSeafood):
			return "seafood"
		default:
			return proteins[0]
		}
	}
	if dishes := features[core.CategoryDishType]; len(dishes) > 0 {
		return dishes[0]
	}
	return "makanan"
}

// DescribeQuery builds a natural Indonesian description of the query
// features, e.g. "soto ayam yang rasa pedas". Returns "pilihan" when the
// query carries no features.
func (s *Searcher) DescribeQuery(features core.FeatureSet) string {
	if len(features) == 0 {
		return "pilihan"
	}

	var parts []string
	for _, category := range []string{
		core.CategoryDishType, core.CategoryProtein, core.CategoryCookingMethod,
		core.CategoryFlavor, core.CategoryRegion, core.CategoryTexture,
	} {
		tags := features[category]
		if len(tags) == 0 {
			continue
		}
		switch category {
		case core.CategoryProtein:
			switch {
			case tags[0] == "vegetarian":
				parts = append(parts, "vegetarian")
			case slices.Contains(describeSeafood, tags[0]):
				parts = append(parts, "seafood")
			default:
				parts = append(parts, tags[0])
			}
		case core.CategoryFlavor:
			for _, flavor := range tags {
				if tasteFlavors[flavor] {
					parts = append(parts, "rasa "+flavor)
				} else {
					parts = append(parts, flavor)
				}
			}
		case core.CategoryDishType:
			if tags[0] == "vegetarian_dish" {
				parts = append(parts, "sayuran")
			} else {
				parts = append(parts, tags[0])
			}
		case core.CategoryRegion:
			parts = append(parts, "khas "+tags[0])
		default:
			parts = append(parts, tags[0])
		}
	}

	switch len(parts) {
	case 0:
		return "pilihan"
	case 1:
		return parts[0]
	default:
		return parts[0] + " yang " + strings.Join(parts[1:], " dan ")
	}
}

// RandomPicks returns up to MaxResults randomly sampled records shaped as
// recommendations. The caller supplies the randomness source so selection
// stays reproducible in tests.
func (s *Searcher) RandomPicks(records []core.MenuRecord, rng *rand.Rand) []core.RecommendedItem {
	if len(records) == 0 || rng == nil {
		return nil
	}

	sampleSize := s.config.MaxResults
	if sampleSize > len(records) {
		sampleSize = len(records)
	}

	items := make([]core.RecommendedItem, 0, sampleSize)
	for i, idx := range rng.Perm(len(records))[:sampleSize] {
		record := records[idx]
		rank := i + 1
		text := strings.ToLower(record.FullText())

		vegetarian := containsAnySubstring(text, "tahu", "tempe", "sayur", "vegetarian")
		seafood := containsAnySubstring(text, "ikan", "udang", "cumi", "seafood")

		var quality string
		switch {
		case vegetarian:
			quality = fmt.Sprintf("Random Vegetarian #%d", rank)
		case seafood:
			quality = fmt.Sprintf("Random Seafood #%d", rank)
		default:
			quality = fmt.Sprintf("Random Selection #%d", rank)
		}

		items = append(items, core.RecommendedItem{
			Id:            record.Id,
			Title:         record.Title,
			Ingredients:   record.Ingredients,
			Description:   record.Description,
			Price:         core.FormatPrice(record.NumericPrice),
			NumericPrice:  record.NumericPrice,
			Image:         record.Image,
			Category:      s.CategoryFromTitle(record.Title),
			QualityLabel:  quality,
			AccuracyLevel: "Random",
			Rank:          rank,
			IsVegetarian:  vegetarian,
			IsSeafood:     seafood,
		})
	}

	return items
}

func containsAnySubstring(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
