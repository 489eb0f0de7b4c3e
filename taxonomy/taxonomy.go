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


package taxonomy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/selera/menurec/core"
)

// Definition is the raw, data-only form of a taxonomy before compilation.
type Definition struct {
	// Categories maps category -> tag -> keyword list.
	Categories map[string]map[string][]string

	// Synonyms maps a token to its expansion tokens.
	Synonyms map[string][]string

	// SpecialExpansions maps specific known tokens to extra literal
	// expansions applied after the synonym table.
	SpecialExpansions map[string][]string

	// SeafoodIndicators, LandAnimalIndicators and VegetarianIndicators are
	// regex patterns used by protein disambiguation.
	SeafoodIndicators    []string
	LandAnimalIndicators []string
	VegetarianIndicators []string

	// SeafoodSpecies and LandSpecies map a specific protein tag to the
	// pattern detecting it, in resolution order.
	SeafoodSpecies []SpeciesPattern
	LandSpecies    []SpeciesPattern

	// FlavorPatterns and RegionPatterns drive the additive enhancement
	// passes for those two categories.
	FlavorPatterns []TagPatterns
	RegionPatterns []TagPatterns

	// VegetarianPrefilter and SeafoodPrefilter hold the strict
	// inclusion/exclusion pattern sets used by candidate prefiltering.
	VegetarianPrefilter PrefilterDefinition
	SeafoodPrefilter    PrefilterDefinition
}

// SpeciesPattern pairs a protein tag with its detection pattern.
type SpeciesPattern struct {
	Tag     string
	Pattern string
}

// TagPatterns pairs a tag with the pattern list that detects it.
type TagPatterns struct {
	Tag      string
	Patterns []string
}

// PrefilterDefinition holds inclusion and exclusion patterns for a strict
// single-category prefilter.
type PrefilterDefinition struct {
	Include []string
	Exclude []string
}

// Taxonomy is the compiled, immutable keyword/synonym dictionary. All regexes
// are compiled once at construction; a Taxonomy is safe for concurrent use.
type Taxonomy struct {
	matchers []tagMatcher

	synonyms          map[string][]string
	specialExpansions map[string][]string

	seafoodIndicators    []*regexp.Regexp
	landAnimalIndicators []*regexp.Regexp
	vegetarianIndicators []*regexp.Regexp

	seafoodSpecies []compiledSpecies
	landSpecies    []compiledSpecies

	flavorPatterns []compiledTagPatterns
	regionPatterns []compiledTagPatterns

	vegetarianPrefilter Prefilter
	seafoodPrefilter    Prefilter
}

type tagMatcher struct {
	category string
	tag      string
	keywords []keywordMatcher // sorted longest keyword first
}

// keywordMatcher implements the keyword match rule: multi-word keywords match
// on full-phrase substring or on all words longer than 2 characters appearing
// individually; single words of length <= 3 require a word boundary; longer
// single words match by substring.
type keywordMatcher struct {
	keyword  string
	words    []string // words (len > 2) of a multi-word keyword
	boundary *regexp.Regexp
}

func (m *keywordMatcher) matches(text string) bool {
	if m.boundary != nil {
		return m.boundary.MatchString(text)
	}
	if len(m.words) > 0 {
		if strings.Contains(text, m.keyword) {
			return true
		}
		for _, w := range m.words {
			if !strings.Contains(text, w) {
				return false
			}
		}
		return true
	}
	return strings.Contains(text, m.keyword)
}

type compiledSpecies struct {
	tag     string
	pattern *regexp.Regexp
}

type compiledTagPatterns struct {
	tag      string
	patterns []*regexp.Regexp
}

// Prefilter is a compiled strict inclusion/exclusion pattern set.
type Prefilter struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// Retain reports whether a record text passes the prefilter: at least one
// inclusion pattern matches and no exclusion pattern does.
func (p *Prefilter) Retain(text string) bool {
	return matchesAny(p.include, text) && !matchesAny(p.exclude, text)
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// New compiles a Definition into an immutable Taxonomy.
func New(def Definition) (*Taxonomy, error) {
	t := &Taxonomy{
		synonyms:          def.Synonyms,
		specialExpansions: def.SpecialExpansions,
	}

	// Deterministic matcher order: categories and tags sorted by name.
	categories := make([]string, 0, len(def.Categories))
	for category := range def.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		tags := make([]string, 0, len(def.Categories[category]))
		for tag := range def.Categories[category] {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		for _, tag := range tags {
			matcher, err := newTagMatcher(category, tag, def.Categories[category][tag])
			if err != nil {
				return nil, err
			}
			t.matchers = append(t.matchers, matcher)
		}
	}

	var err error
	if t.seafoodIndicators, err = compileAll(def.SeafoodIndicators); err != nil {
		return nil, err
	}
	if t.landAnimalIndicators, err = compileAll(def.LandAnimalIndicators); err != nil {
		return nil, err
	}
	if t.vegetarianIndicators, err = compileAll(def.VegetarianIndicators); err != nil {
		return nil, err
	}
	if t.seafoodSpecies, err = compileSpecies(def.SeafoodSpecies); err != nil {
		return nil, err
	}
	if t.landSpecies, err = compileSpecies(def.LandSpecies); err != nil {
		return nil, err
	}
	if t.flavorPatterns, err = compileTagPatterns(def.FlavorPatterns); err != nil {
		return nil, err
	}
	if t.regionPatterns, err = compileTagPatterns(def.RegionPatterns); err != nil {
		return nil, err
	}
	if t.vegetarianPrefilter, err = compilePrefilter(def.VegetarianPrefilter); err != nil {
		return nil, err
	}
	if t.seafoodPrefilter, err = compilePrefilter(def.SeafoodPrefilter); err != nil {
		return nil, err
	}

	return t, nil
}

func newTagMatcher(category, tag string, keywords []string) (tagMatcher, error) {
	// Longest first so specific phrases are tried before short substrings.
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	matcher := tagMatcher{category: category, tag: tag}
	for _, keyword := range sorted {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		km := keywordMatcher{keyword: keyword}
		switch {
		case strings.Contains(keyword, " "):
			for _, w := range strings.Fields(keyword) {
				if len(w) > 2 {
					km.words = append(km.words, w)
				}
			}
		case len(keyword) <= 3:
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
			if err != nil {
				return tagMatcher{}, fmt.Errorf("taxonomy: keyword %q for %s/%s: %w", keyword, category, tag, err)
			}
			km.boundary = re
		}
		matcher.keywords = append(matcher.keywords, km)
	}
	return matcher, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func compileSpecies(species []SpeciesPattern) ([]compiledSpecies, error) {
	compiled := make([]compiledSpecies, 0, len(species))
	for _, s := range species {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: species %q: %w", s.Tag, err)
		}
		compiled = append(compiled, compiledSpecies{tag: s.Tag, pattern: re})
	}
	return compiled, nil
}

func compileTagPatterns(entries []TagPatterns) ([]compiledTagPatterns, error) {
	compiled := make([]compiledTagPatterns, 0, len(entries))
	for _, entry := range entries {
		patterns, err := compileAll(entry.Patterns)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: tag %q: %w", entry.Tag, err)
		}
		compiled = append(compiled, compiledTagPatterns{tag: entry.Tag, patterns: patterns})
	}
	return compiled, nil
}

func compilePrefilter(def PrefilterDefinition) (Prefilter, error) {
	include, err := compileAll(def.Include)
	if err != nil {
		return Prefilter{}, err
	}
	exclude, err := compileAll(def.Exclude)
	if err != nil {
		return Prefilter{}, err
	}
	return Prefilter{include: include, exclude: exclude}, nil
}

// KeywordMatches runs the primary keyword pass over normalized text and
// returns one tag per matching (category, tag) pair. The first matching
// keyword for a tag is sufficient.
func (t *Taxonomy) KeywordMatches(text string) core.FeatureSet {
	features := core.FeatureSet{}
	for i := range t.matchers {
		m := &t.matchers[i]
		for j := range m.keywords {
			if m.keywords[j].matches(text) {
				features.Add(m.category, m.tag)
				break
			}
		}
	}
	return features
}

// HasSeafoodIndicator reports whether any seafood indicator pattern matches.
func (t *Taxonomy) HasSeafoodIndicator(text string) bool {
	return matchesAny(t.seafoodIndicators, text)
}

// HasLandAnimalIndicator reports whether any land-animal indicator pattern matches.
func (t *Taxonomy) HasLandAnimalIndicator(text string) bool {
	return matchesAny(t.landAnimalIndicators, text)
}

// HasVegetarianIndicator reports whether any vegetarian indicator pattern matches.
func (t *Taxonomy) HasVegetarianIndicator(text string) bool {
	return matchesAny(t.vegetarianIndicators, text)
}

// SeafoodSpecies returns the specific seafood protein tags present in the text.
func (t *Taxonomy) SeafoodSpecies(text string) []string {
	return matchSpecies(t.seafoodSpecies, text)
}

// LandSpecies returns the specific land-animal protein tags present in the text.
func (t *Taxonomy) LandSpecies(text string) []string {
	return matchSpecies(t.landSpecies, text)
}

func matchSpecies(species []compiledSpecies, text string) []string {
	var tags []string
	for _, s := range species {
		if s.pattern.MatchString(text) {
			tags = append(tags, s.tag)
		}
	}
	return tags
}

// FlavorMatches returns flavor tags detected by the enhancement pattern pass.
func (t *Taxonomy) FlavorMatches(text string) []string {
	return matchTagPatterns(t.flavorPatterns, text)
}

// RegionMatches returns region tags detected by the enhancement pattern pass.
func (t *Taxonomy) RegionMatches(text string) []string {
	return matchTagPatterns(t.regionPatterns, text)
}

func matchTagPatterns(entries []compiledTagPatterns, text string) []string {
	var tags []string
	for _, entry := range entries {
		if matchesAny(entry.patterns, text) {
			tags = append(tags, entry.tag)
		}
	}
	return tags
}

// Expand returns the expansion tokens for a token: synonym-table entries
// followed by any special-cased literal expansions. Returns nil for tokens
// with no expansions.
func (t *Taxonomy) Expand(token string) []string {
	var out []string
	out = append(out, t.synonyms[token]...)
	out = append(out, t.specialExpansions[token]...)
	return out
}

// VegetarianPrefilter returns the strict vegetarian inclusion/exclusion filter.
func (t *Taxonomy) VegetarianPrefilter() *Prefilter {
	return &t.vegetarianPrefilter
}

// SeafoodPrefilter returns the strict seafood inclusion/exclusion filter.
func (t *Taxonomy) SeafoodPrefilter() *Prefilter {
	return &t.seafoodPrefilter
}
