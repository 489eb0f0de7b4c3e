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

import "github.com/selera/menurec/core"

// AnalyzeRequirements derives the requirement profile of a query feature set.
// It is total: an empty feature set yields a zero profile with both flags false.
func AnalyzeRequirements(features core.FeatureSet) core.QueryRequirementProfile {
	profile := core.QueryRequirementProfile{
		TotalCategories: len(features),
		TotalValues:     features.TotalValues(),
	}
	profile.IsMultiCategory = profile.TotalCategories > 1
	for _, tags := range features {
		if len(tags) > 1 {
			profile.IsMultiValue = true
			break
		}
	}
	return profile
}
