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


// Package search implements the rule-based menu recommendation pipeline.
//
// A query flows through five stages:
//   - feature extraction over the normalized query text
//   - requirement analysis (how many categories and values the query demands)
//   - strict prefiltering for explicit vegetarian or seafood queries
//   - multi-factor scoring: direct text relevance plus per-category feature
//     bonuses, with inclusion thresholds that differ by query shape
//   - ranking by total score with relevance as tie-breaker
//
// The pipeline is deterministic: the same query against the same records
// always produces the same ranked output. Every candidate carries a full
// ScoreBreakdown so results stay explainable.
package search
