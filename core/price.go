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
	"strconv"
	"strings"
)

// PriceUnavailable is the formatted price for records without a usable price.
const PriceUnavailable = "Harga belum tersedia"

// ParseNumericPrice extracts a numeric value from free-form price text.
// Only digits are considered; text without digits yields 0.
func ParseNumericPrice(price string) int {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		// Overflow on absurdly long digit runs
		return 0
	}
	return n
}

// FormatPrice renders a numeric price as Indonesian Rupiah, using dots as
// thousands separators, e.g. 25000 -> "Rp 25.000".
func FormatPrice(price int) string {
	if price <= 0 {
		return PriceUnavailable
	}

	digits := strconv.Itoa(price)
	var b strings.Builder
	b.WriteString("Rp ")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
