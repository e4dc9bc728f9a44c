// Copyright 2025 go-highway Authors
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

//go:build hwy_minimal

package hwy

// NoSimdEnv always reports false in minimal builds: the environment is not
// consulted.
func NoSimdEnv() bool {
	return false
}

// envOverride is disabled in minimal builds; the widest detected level wins.
func envOverride([]DispatchLevel) (DispatchLevel, bool) {
	return DispatchScalar, false
}
