// Copyright 2024 The go-lanes Authors
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

package lanes

import "strings"

// Feature strings name CPU flags the way target attributes spell them:
// a comma-separated list such as "avx2,bmi1,bmi2,fma". Flag names are
// compared byte-for-byte; no normalization is applied.
//
// Note that splitting an empty string yields one empty-named flag, not zero
// flags. A request for zero flags is expressed as a nil slice to SubsetFlags
// and always succeeds.

// ParseFeatures splits a feature string into its flag names.
func ParseFeatures(s string) []string {
	return strings.Split(s, ",")
}

// Subset reports whether every flag named by the request string is present
// in at least one granted group. On failure, missing names the first absent
// flag in request order (which may be the empty string, when the request
// itself was empty).
func Subset(request string, granted [][]string) (missing string, ok bool) {
	return SubsetFlags(ParseFeatures(request), granted)
}

// SubsetFlags is the slice form of Subset. Duplicate request flags are
// checked like any other flag; a nil or empty request trivially succeeds.
func SubsetFlags(request []string, granted [][]string) (missing string, ok bool) {
	have := make(map[string]struct{})
	for _, group := range granted {
		for _, flag := range group {
			have[flag] = struct{}{}
		}
	}
	for _, flag := range request {
		if _, found := have[flag]; !found {
			return flag, false
		}
	}
	return "", true
}
