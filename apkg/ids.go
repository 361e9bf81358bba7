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
	"sync"

	"github.com/jonboulle/clockwork"
)

// IDSource is a source of collection identifiers. Identifiers returned by an
// IDSource are strictly increasing.
type IDSource interface {
	// Next returns the next identifier.
	Next() int64
}

// clockIDs records the last identifier handed out by any ClockIDs so that
// writers created within the same millisecond never share identifiers.
var clockIDs struct {
	sync.Mutex
	last int64
}

// ClockIDs is an IDSource that returns the current time in milliseconds since
// the Unix epoch, the same way Anki assigns identifiers. Identifiers never
// repeat or go backwards within a process, even if the clock does.
type ClockIDs struct {
	clock clockwork.Clock
}

// NewClockIDs returns a new ClockIDs using the given clock. If clock is nil
// the real clock is used.
func NewClockIDs(clock clockwork.Clock) *ClockIDs {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockIDs{clock: clock}
}

// Next implements IDSource.Next.
func (c *ClockIDs) Next() int64 {
	now := c.clock.Now().UnixMilli()

	clockIDs.Lock()
	defer clockIDs.Unlock()
	clockIDs.last = max(now, clockIDs.last+1)
	return clockIDs.last
}

// Reserve marks every identifier up to and including id as used so that
// later calls to Next return larger identifiers.
func (c *ClockIDs) Reserve(id int64) {
	clockIDs.Lock()
	defer clockIDs.Unlock()
	clockIDs.last = max(id, clockIDs.last)
}

// SequenceIDs is an IDSource that returns consecutive integers.
type SequenceIDs struct {
	mu   sync.Mutex
	next int64
}

// NewSequenceIDs returns a SequenceIDs whose first identifier is start.
func NewSequenceIDs(start int64) *SequenceIDs {
	return &SequenceIDs{next: start}
}

// Next implements IDSource.Next.
func (s *SequenceIDs) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// Reserve marks every identifier up to and including id as used.
func (s *SequenceIDs) Reserve(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = max(s.next, id+1)
}

// reserver is implemented by IDSources that can skip identifiers used
// outside of Next.
type reserver interface {
	Reserve(id int64)
}
