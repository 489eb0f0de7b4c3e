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
	"strings"

	"github.com/selera/menurec/core"
	"github.com/selera/menurec/taxonomy"
)

// Prefilter kinds reported to monitors.
const (
	PrefilterNone       = "none"
	PrefilterVegetarian = "vegetarian"
	PrefilterSeafood    = "seafood"
)

// seafoodProteins are the protein tags that mark a query as a seafood query.
var seafoodProteins = []string{"seafood", "ikan", "udang", "cumi", "kepiting", "kerang", "lobster"}

// isVegetarianQuery reports whether the query demands vegetarian results.
func isVegetarianQuery(features core.FeatureSet) bool {
	return features.Has(core.CategoryProtein, "vegetarian")
}

// isSeafoodQuery reports whether the query demands seafood results.
func isSeafoodQuery(features core.FeatureSet) bool {
	for _, tag := range seafoodProteins {
		if features.Has(core.CategoryProtein, tag) {
			return true
		}
	}
	return false
}

// applyPrefilter narrows the candidate set for explicitly vegetarian or
// seafood queries. The strict filters only trigger when the query literally
// asks for the class ("vegetarian", "seafood", "laut"); a plain "ikan bakar"
// query keeps the whole catalog so specific dishes still rank normally.
func (s *Searcher) applyPrefilter(features core.FeatureSet, queryClean string, records []core.MenuRecord) ([]core.MenuRecord, string) {
	if len(features) == 0 {
		return records, PrefilterNone
	}

	if isVegetarianQuery(features) && strings.Contains(queryClean, "vegetarian") {
		return retainMatching(s.taxonomy.VegetarianPrefilter(), records), PrefilterVegetarian
	}
	if isSeafoodQuery(features) &&
		(strings.Contains(queryClean, "seafood") || strings.Contains(queryClean, "laut")) {
		return retainMatching(s.taxonomy.SeafoodPrefilter(), records), PrefilterSeafood
	}

	return records, PrefilterNone
}

func retainMatching(pf *taxonomy.Prefilter, records []core.MenuRecord) []core.MenuRecord {
	var retained []core.MenuRecord
	for _, record := range records {
		if pf.Retain(strings.ToLower(record.FullText())) {
			retained = append(retained, record)
		}
	}
	return retained
}
