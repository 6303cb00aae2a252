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

//go:build amd64

package lanes

func init() {
	SetActive(Detect())
}

// detectLevel probes x86 levels most-capable-first. Each token verifies its
// whole feature string, so a host with AVX-512F but without, say, VBMI2
// lands on AVX2 rather than on a partially supported level.
func detectLevel() Level {
	if _, ok := TryNewAvx512(); ok {
		return LevelAvx512
	}
	if _, ok := TryNewAvx2(); ok {
		return LevelAvx2
	}
	if _, ok := TryNewSse42(); ok {
		return LevelSse42
	}
	return LevelFallback
}
