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


// Package index provides an exact nearest-neighbor index over unit-normalized
// embedding vectors.
//
// The index is built once per catalog snapshot during ingestion and is
// immutable afterwards, so lookups need no locking. Similarity is the inner
// product, which equals cosine similarity for unit vectors.
package index
