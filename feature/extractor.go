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


package feature

import (
	"errors"
	"strings"

	"github.com/selera/menurec/core"
	"github.com/selera/menurec/taxonomy"
)

// ErrTaxonomyRequired is returned when an Extractor is created without a taxonomy.
var ErrTaxonomyRequired = errors.New("taxonomy is required")

// Extractor extracts categorical features from food text.
// An Extractor is immutable and safe for concurrent use.
type Extractor struct {
	taxonomy *taxonomy.Taxonomy
}

// NewExtractor creates an extractor backed by the given taxonomy.
func NewExtractor(tax *taxonomy.Taxonomy) (*Extractor, error) {
	if tax == nil {
		return nil, ErrTaxonomyRequired
	}
	return &Extractor{taxonomy: tax}, nil
}

// Extract normalizes the text and runs the layered extraction passes.
// Categories without detected tags are absent from the result.
func (e *Extractor) Extract(text string) core.FeatureSet {
	normalized := Normalize(text)
	if normalized == "" {
		return core.FeatureSet{}
	}

	features := e.taxonomy.KeywordMatches(normalized)
	e.disambiguateProtein(normalized, features)
	for _, tag := range e.taxonomy.FlavorMatches(normalized) {
		features.Add(core.CategoryFlavor, tag)
	}
	for _, tag := range e.taxonomy.RegionMatches(normalized) {
		features.Add(core.CategoryRegion, tag)
	}
	return features
}

// disambiguateProtein resolves the protein class of the text and merges the
// resolved tags into the feature set. Exactly one class wins: vegetarian only
// when no animal signal is present, seafood over land animals, specific
// species over the generic seafood tag. A vegetarian resolution replaces any
// protein tags the keyword pass picked up, so a dish named after a meat
// preparation but free of animal signals stays vegetarian.
func (e *Extractor) disambiguateProtein(text string, features core.FeatureSet) {
	hasSeafood := e.taxonomy.HasSeafoodIndicator(text)
	hasLand := e.taxonomy.HasLandAnimalIndicator(text)
	hasVegetarian := e.taxonomy.HasVegetarianIndicator(text)

	var detected []string
	switch {
	case hasVegetarian && !hasLand && !hasSeafood:
		delete(features, core.CategoryProtein)
		detected = []string{"vegetarian"}
	case hasSeafood:
		detected = e.taxonomy.SeafoodSpecies(text)
		if len(detected) == 0 {
			detected = []string{"seafood"}
		}
	case hasLand:
		detected = e.taxonomy.LandSpecies(text)
	}

	for _, tag := range detected {
		features.Add(core.CategoryProtein, tag)
	}
}

// ExpandSynonyms expands each token of the text with its synonym-table and
// special-case expansions, keeping the original token in place.
func (e *Extractor) ExpandSynonyms(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(strings.ToLower(text))
	expanded := make([]string, 0, len(words))
	for _, word := range words {
		expanded = append(expanded, word)
		expanded = append(expanded, e.taxonomy.Expand(word)...)
	}
	return strings.Join(expanded, " ")
}
