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


package index

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/selera/menurec/core"
)

// ErrDimensionMismatch is returned when an entry or query vector does not
// match the index dimensionality.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// Entry associates a record ID with its unit-normalized embedding.
type Entry struct {
	Id     core.ID
	Vector []float32
}

// Hit is a single nearest-neighbor result.
type Hit struct {
	Id    core.ID
	Score float32 // Inner product with the query vector
}

// Index is an immutable exact nearest-neighbor index. Safe for concurrent use.
type Index struct {
	dim     int
	entries []Entry
}

// Build constructs an index from entries. Entries with nil vectors are
// skipped; all remaining vectors must share the same dimensionality.
func Build(entries []Entry) (*Index, error) {
	ix := &Index{}
	for _, entry := range entries {
		if len(entry.Vector) == 0 {
			continue
		}
		if ix.dim == 0 {
			ix.dim = len(entry.Vector)
		}
		if len(entry.Vector) != ix.dim {
			return nil, fmt.Errorf("%w: entry %d has %d dimensions, want %d",
				ErrDimensionMismatch, entry.Id, len(entry.Vector), ix.dim)
		}
		ix.entries = append(ix.entries, entry)
	}
	return ix, nil
}

// Len returns the number of indexed vectors.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Dimensions returns the vector dimensionality, 0 for an empty index.
func (ix *Index) Dimensions() int {
	return ix.dim
}

// Search returns the k nearest entries to the query vector, most similar
// first. Ties break toward the earlier entry for deterministic output.
func (ix *Index) Search(query []float32, k int) ([]Hit, error) {
	if len(ix.entries) == 0 || k <= 0 {
		return nil, nil
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("%w: query has %d dimensions, want %d",
			ErrDimensionMismatch, len(query), ix.dim)
	}

	hits := make([]Hit, len(ix.entries))
	for i, entry := range ix.entries {
		hits[i] = Hit{Id: entry.Id, Score: dot(query, entry.Vector)}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

// Normalize scales the vector to unit length in place and returns it.
// Zero vectors are returned unchanged.
func Normalize(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}
	scale := float32(1.0 / math.Sqrt(sumSquares))
	for i := range vector {
		vector[i] *= scale
	}
	return vector
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
