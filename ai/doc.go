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


// Package ai defines the embedding abstraction used by catalog ingestion
// and semantic lookup.
//
// The Embedder interface is the only AI dependency of the system; the
// recommendation pipeline itself is rule-based and never calls it at query
// time. Two implementations exist:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test double with behavior injection
//
// Production constructors return the ai.Embedder interface to keep callers
// decoupled from the concrete service; the mock constructor returns the
// concrete type so tests can inject behavior and assert call counts.
package ai
