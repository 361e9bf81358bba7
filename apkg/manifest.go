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


package apkg

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Manifest maps the media files in a package to their original names. The
// media file for the file name at index i is stored in the package as i.
type Manifest []string

// Add adds a file name to the manifest and returns the name of its media
// file in the package.
func (m *Manifest) Add(name string) string {
	*m = append(*m, name)
	return strconv.Itoa(len(*m) - 1)
}

// MarshalJSON encodes the manifest as an object mapping media file names to
// original file names.
func (m Manifest) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(m))
	for i, name := range m {
		obj[strconv.Itoa(i)] = name
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encoding media manifest: %w", err)
	}
	return b, nil
}

// UnmarshalJSON decodes a manifest encoded with MarshalJSON. Media file
// names must be the consecutive integers starting at 0.
func (m *Manifest) UnmarshalJSON(b []byte) error {
	var obj map[string]string
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPackage, err)
	}

	names := make(Manifest, len(obj))
	for k, name := range obj {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(obj) {
			return fmt.Errorf("%w: bad media file %q", ErrInvalidPackage, k)
		}
		names[i] = name
	}
	*m = names
	return nil
}
