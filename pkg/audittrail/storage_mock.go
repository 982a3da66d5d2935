// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package audittrail

import (
	"sync"

	"github.com/moov-io/csb34/pkg/csb34"
)

type MockStorage struct {
	Err error

	mu    sync.Mutex
	Saved []string
}

func (s *MockStorage) Close() error {
	return s.Err
}

func (s *MockStorage) SaveFile(filename string, file *csb34.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err == nil {
		s.Saved = append(s.Saved, filename)
	}
	return s.Err
}
