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


// Package taxonomy holds the bilingual Indonesian/English food keyword
// dictionary and its compiled matching machinery.
//
// A Definition is pure data: category keyword lists, a synonym table,
// indicator and species patterns for protein disambiguation, flavor and
// region enhancement patterns, and the strict prefilter pattern sets.
// New compiles a Definition into an immutable Taxonomy whose regexes are
// built once; a Taxonomy is safe for concurrent use. Default returns the
// built-in dictionary used in production.
package taxonomy
