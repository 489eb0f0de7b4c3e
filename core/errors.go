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

import "errors"

// Domain validation errors
var (
	// ErrInvalidMenuRecord indicates a MenuRecord failed validation.
	ErrInvalidMenuRecord = errors.New("invalid menu record")

	// ErrShortTitle indicates the Title field is missing or too short to index.
	ErrShortTitle = errors.New("title must be longer than 2 characters")

	// ErrNegativePrice indicates a negative derived numeric price.
	ErrNegativePrice = errors.New("numeric price cannot be negative")
)
