// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"io"
	"os"
	"path/filepath"
)

// FileResolver finds configuration files by name.
type FileResolver interface {
	Resolve(file string) (io.ReadCloser, error)
}

// RelativeResolver looks files up relative to a list of directories.
type RelativeResolver struct {
	paths []string
}

var _ FileResolver = (*RelativeResolver)(nil)

// NewRelativeResolver returns a resolver searching the given directories,
// then the working directory, then the directory of the executable.
func NewRelativeResolver(paths ...string) *RelativeResolver {
	pathList := make([]string, 0, len(paths)+2)
	pathList = append(pathList, paths...)

	if cwd, err := os.Getwd(); err == nil {
		pathList = append(pathList, cwd)
	}
	pathList = append(pathList, filepath.Dir(os.Args[0]))

	return &RelativeResolver{paths: pathList}
}

// Resolve opens the first file matching name. Absolute names are opened
// as-is.
func (rr *RelativeResolver) Resolve(file string) (io.ReadCloser, error) {
	if filepath.IsAbs(file) {
		return os.Open(file)
	}

	for _, dir := range rr.paths {
		if f, err := os.Open(filepath.Join(dir, file)); err == nil {
			return f, nil
		}
	}
	return nil, &os.PathError{Op: "resolve", Path: file, Err: os.ErrNotExist}
}
