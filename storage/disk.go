// Copyright 2025 reportguard authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

// Package storage persists generated report artifacts on the local
// filesystem. File names are derived from the execution id and a millisecond
// timestamp, which makes collisions between two writes for the same
// execution practically impossible without being cryptographically unique.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type DiskStore struct {
	dir string
}

// NewDiskStore ensures the reports directory exists. This happens once at
// process start, not per request.
func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "could not resolve reports directory")
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Wrap(err, "could not create reports directory")
	}
	return &DiskStore{dir: abs}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) FileName(executionID string, t time.Time) string {
	return fmt.Sprintf("report-%s-%d.pdf", sanitize(executionID), t.UnixMilli())
}

func (s *DiskStore) Write(name string, data []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "could not write report artifact")
	}
	return path, nil
}

// Delete removes the artifact if it exists. A missing file is not an error,
// the bool reports whether there was anything to remove.
func (s *DiskStore) Delete(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "could not stat report artifact")
	}
	if err := os.Remove(path); err != nil {
		return false, errors.Wrap(err, "could not delete report artifact")
	}
	return true, nil
}

func (s *DiskStore) Open(name string) (io.ReadCloser, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Path resolves a bare file name inside the store. Names containing path
// separators or parent references are rejected, download and view handlers
// pass user supplied values in here.
func (s *DiskStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", errors.Errorf("invalid artifact file name: %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
