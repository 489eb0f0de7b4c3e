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


// Package feature turns free-form Indonesian/English food text into a
// categorical FeatureSet.
//
// Extraction runs in layered passes over normalized text: the primary
// keyword pass over the whole taxonomy, then a protein disambiguation
// pass that resolves vegetarian, seafood and land-animal signals, then
// purely additive flavor and region pattern passes. The result only
// carries categories that actually have tags.
package feature
