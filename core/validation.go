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
	"fmt"
	"strings"
)

// ValidateMenuRecord validates a MenuRecord according to domain rules.
//
// Validation rules:
//   - Title must be longer than 2 characters after trimming
//   - NumericPrice must not be negative
//
// NOT validated (defaulted at the ingestion boundary):
//   - Ingredients, Description, Image (may be empty)
//   - Vector (populated during ingestion)
func ValidateMenuRecord(record *MenuRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidMenuRecord)
	}

	if len(strings.TrimSpace(record.Title)) <= 2 {
		return fmt.Errorf("%w: %w", ErrInvalidMenuRecord, ErrShortTitle)
	}

	if record.NumericPrice < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMenuRecord, ErrNegativePrice)
	}

	return nil
}
