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


package core

import (
	"encoding/binary"
	"slices"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Menu record IDs come from the external catalog; snapshot versions are
// generated with content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b
// hashing. Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Feature categories recognized by the taxonomy.
const (
	CategoryProtein       = "protein"
	CategoryCookingMethod = "cooking_method"
	CategoryFlavor        = "flavor"
	CategoryDishType      = "dish_type"
	CategoryRegion        = "region"
	CategoryTexture       = "texture"
	CategoryServingStyle  = "serving_style"
)

// MenuRecord represents a single menu item from the restaurant catalog.
// Records are immutable once loaded into a CatalogSnapshot.
type MenuRecord struct {
	Id           ID
	Title        string
	Ingredients  string
	Description  string
	Price        string
	NumericPrice int // Derived from Price at the ingestion boundary; 0 if unparseable
	Image        string
	Available    bool
	Vector       []float32 // Unit-normalized embedding (populated during ingestion)
}

// FullText returns the concatenated searchable text of the record.
func (r *MenuRecord) FullText() string {
	return r.Title + " " + r.Ingredients + " " + r.Description
}

// FeatureSet maps a feature category to the set of tags detected in a text.
// Tags within a category are unique; categories without tags are absent from
// the map rather than present with an empty slice.
type FeatureSet map[string][]string

// Add inserts a tag into a category, preserving set semantics.
func (fs FeatureSet) Add(category, tag string) {
	if slices.Contains(fs[category], tag) {
		return
	}
	fs[category] = append(fs[category], tag)
}

// Has reports whether the category contains the tag.
func (fs FeatureSet) Has(category, tag string) bool {
	return slices.Contains(fs[category], tag)
}

// TotalValues returns the number of tags across all categories.
func (fs FeatureSet) TotalValues() int {
	total := 0
	for _, tags := range fs {
		total += len(tags)
	}
	return total
}

// QueryRequirementProfile summarizes the shape of a query's extracted features.
// It is derived once per query and read-only thereafter.
type QueryRequirementProfile struct {
	TotalCategories int
	TotalValues     int
	IsMultiCategory bool // More than one category carries tags
	IsMultiValue    bool // Some single category carries more than one tag
}

// MatchDetail records how a candidate fared against one query category.
type MatchDetail struct {
	Required   []string
	Found      []string
	Matched    []string // Required ∩ Found
	MatchRatio float64
}

// ScoreBreakdown is the full, explainable scoring result for one candidate.
type ScoreBreakdown struct {
	RelevanceScore    float64
	FeatureScore      float64
	TotalScore        float64
	RequirementsMet   int
	TotalRequirements int
	SatisfactionRatio float64 // 1.0 when TotalRequirements is 0
	MatchDetails      map[string]MatchDetail
	Included          bool
}

// RecommendedItem is a single entry in the ranked query output.
type RecommendedItem struct {
	Id                ID
	Title             string
	Ingredients       string
	Description       string
	Price             string // Formatted, e.g. "Rp 25.000"
	NumericPrice      int
	Image             string
	Category          string // Derived category label from the record title
	QualityLabel      string
	AccuracyLevel     string
	CriteriaSatisfied int
	TotalCriteria     int
	MatchRatio        float64
	Rank              int
	IsVegetarian      bool
	IsSeafood         bool
	IsMultiValue      bool
}

// SnapshotMetadata describes a persisted catalog snapshot.
type SnapshotMetadata struct {
	Version        ID
	SchemaTag      string
	TotalRecords   int
	LastUpdated    time.Time
	EmbeddingModel string
	FeatureFlags   []string
}

// CatalogSnapshot is the immutable, versioned view of the menu catalog used
// by all concurrently running queries. The only permitted mutation is
// whole-snapshot replacement after a successful ingestion.
type CatalogSnapshot struct {
	Records  []MenuRecord
	Metadata SnapshotMetadata
}
