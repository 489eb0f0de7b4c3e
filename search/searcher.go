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
	"log/slog"
	"sort"

	"github.com/selera/menurec/core"
	"github.com/selera/menurec/feature"
	"github.com/selera/menurec/taxonomy"
)

// Searcher runs the rule-based recommendation pipeline over catalog records.
// A Searcher is immutable and safe for concurrent use.
type Searcher struct {
	taxonomy  *taxonomy.Taxonomy
	extractor *feature.Extractor
	config    *Config
	logger    *slog.Logger
}

// Match pairs a recommended record with its full score breakdown.
type Match struct {
	Record    core.MenuRecord
	Breakdown core.ScoreBreakdown
}

// Result is the complete output of one query, including the query analysis
// that produced the ranking.
type Result struct {
	Matches         []Match
	Features        core.FeatureSet
	Profile         core.QueryRequirementProfile
	VegetarianQuery bool
	SeafoodQuery    bool
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig overrides the default scoring configuration.
func WithConfig(config *Config) Option {
	return func(s *Searcher) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

// NewSearcher creates a new searcher over the given taxonomy.
func NewSearcher(tax *taxonomy.Taxonomy, opts ...Option) (*Searcher, error) {
	if tax == nil {
		return nil, ErrTaxonomyRequired
	}

	extractor, err := feature.NewExtractor(tax)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		taxonomy:  tax,
		extractor: extractor,
		config:    DefaultConfig(),
		logger:    slog.Default().With("component", "searcher"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs the full pipeline for a query against the given records.
func (s *Searcher) Search(query string, records []core.MenuRecord) *Result {
	return s.SearchWithMonitor(query, records, nil)
}

// SearchWithMonitor runs the pipeline with per-stage monitoring callbacks.
func (s *Searcher) SearchWithMonitor(query string, records []core.MenuRecord, monitor SearchMonitor) *Result {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	result := &Result{}

	queryClean := feature.Normalize(query)
	if queryClean == "" || len(records) == 0 {
		monitor.Finish(nil)
		return result
	}

	result.Features = s.extractor.Extract(queryClean)
	result.Profile = AnalyzeRequirements(result.Features)
	result.VegetarianQuery = isVegetarianQuery(result.Features)
	result.SeafoodQuery = isSeafoodQuery(result.Features)
	monitor.QueryAnalyzed(result.Features, result.Profile)

	s.logger.Debug("query analyzed",
		"query", queryClean,
		"categories", result.Profile.TotalCategories,
		"values", result.Profile.TotalValues)

	candidates, prefilterKind := s.applyPrefilter(result.Features, queryClean, records)
	monitor.PrefilterApplied(prefilterKind, len(candidates))

	// A prefilter that eliminates everything falls back to the full catalog
	// so the query still gets best-effort results.
	if len(candidates) == 0 {
		s.logger.Warn("prefilter removed all candidates, falling back to full catalog",
			"prefilter", prefilterKind)
		candidates = records
		monitor.PrefilterFallback(len(candidates))
	}

	for i := range candidates {
		record := &candidates[i]
		breakdown := s.scoreRecord(record, queryClean, result.Features, result.Profile)
		monitor.RecordScored(record, &breakdown)
		if breakdown.Included {
			result.Matches = append(result.Matches, Match{Record: *record, Breakdown: breakdown})
		}
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		return matchRanksHigher(result.Matches[i], result.Matches[j])
	})

	if len(result.Matches) > s.config.MaxResults {
		result.Matches = result.Matches[:s.config.MaxResults]
	}

	s.logger.Debug("search complete", "query", queryClean, "matches", len(result.Matches))
	monitor.Finish(result.Matches)
	return result
}

// matchRanksHigher orders matches by total score, with relevance breaking ties.
func matchRanksHigher(a, b Match) bool {
	if a.Breakdown.TotalScore != b.Breakdown.TotalScore {
		return a.Breakdown.TotalScore > b.Breakdown.TotalScore
	}
	return a.Breakdown.RelevanceScore > b.Breakdown.RelevanceScore
}

// Config returns the scoring configuration in use.
func (s *Searcher) Config() *Config {
	return s.config
}
