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


package feature

import (
	"regexp"
	"strings"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s-]`)
	spaceHyphenRE = regexp.MustCompile(`[\s-]+`)
)

// Normalize lowercases the text, strips punctuation, folds hyphens into
// spaces and collapses whitespace runs. "Cumi-Cumi Sambal!" becomes
// "cumi cumi sambal".
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}
	text = nonWordRE.ReplaceAllString(text, " ")
	text = spaceHyphenRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
