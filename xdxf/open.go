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

package xdxf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/klauspost/compress/gzip"
)

// Open opens the dictionary file at path for reading. Files with a .dz
// extension are decompressed as dictzip and files with a .gz extension as
// gzip. Any other file is read as is. The caller must close the returned
// reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("reading dictzip header %q: %w", path, err)
		}
		return &multiCloser{Reader: z, closers: []any{z, f}}, nil
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("reading gzip header %q: %w", path, err)
		}
		return &multiCloser{Reader: z, closers: []any{z, f}}, nil
	default:
		return f, nil
	}
}

// multiCloser is a decompressing reader that closes the decompressor and then
// the underlying file.
type multiCloser struct {
	io.Reader
	closers []any
}

// Close closes every closer in order and returns the joined errors.
func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if c, ok := c.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
