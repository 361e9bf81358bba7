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
	"crypto/sha1" //nolint:gosec // Anki's field checksum is defined with SHA-1.
	"encoding/binary"
	"math/rand/v2"
)

// guidLen is the length of generated note GUIDs.
const guidLen = 10

// guidAlphabet is the alphabet of Anki's base91 note GUIDs.
const guidAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!#$%&()*+,-./:;<=>?@[]^_`{|}~"

// Checksum returns the checksum Anki uses to find duplicate notes. It is the
// first 32 bits of the SHA-1 digest of text read as a big-endian integer.
func Checksum(text string) int64 {
	//nolint:gosec // Not used for security.
	sum := sha1.Sum([]byte(text))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}

// GUID returns a new random note GUID.
func GUID() string {
	b := make([]byte, guidLen)
	for i := range b {
		//nolint:gosec // GUIDs only need to be unique within a collection.
		b[i] = guidAlphabet[rand.IntN(len(guidAlphabet))]
	}
	return string(b)
}
