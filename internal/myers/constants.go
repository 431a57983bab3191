// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package myers

// smallInputThreshold is the combined input length below which computeDP (an O(NM)
// dynamic-programming engine) is used instead of the divide-and-conquer engine: it is simpler,
// branch-predictable, and empirically faster for tiny inputs.
const smallInputThreshold = 500
