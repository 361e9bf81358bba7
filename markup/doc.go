// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package markup normalizes the body of an XDXF dictionary entry into a
// single-line definition and an optional transcription.
//
// Dictionary bodies are loosely structured and frequently malformed. The
// markup is parsed permissively: unknown tags are kept, unmatched end tags are
// ignored and elements are never moved to a different parent.
package markup
