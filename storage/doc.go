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


// Package storage provides the storage abstraction layer for menurec.
//
// This package defines the repository interface that decouples snapshot
// persistence from the recommendation logic, so different backends
// (BadgerDB, in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backends:
//
//	repo, err := badger.NewCatalogRepository(path)  // returns storage.CatalogRepository
//
// Internal package constructors (newBackend, newCatalogStore, etc.) may
// return concrete types since they're only used within the implementation
// package.
//
// # Snapshot Model
//
// The catalog is stored as immutable, versioned snapshots. Each ingestion
// run writes a complete snapshot under a fresh version and then atomically
// promotes it via a single current-version pointer. Readers always load
// through the pointer, so a half-written snapshot is never observable.
//
// # Usage
//
// Create a repository instance:
//
//	repo, err := badger.NewCatalogRepository("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// Use in tests with the in-memory backend:
//
//	repo, err := badger.NewMemoryCatalogRepository()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
