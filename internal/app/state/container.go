// Package state owns the authoritative in-memory student and room
// collections. All mutation funnels through the container; readers receive
// copies, never the backing slices, so an in-flight request can never observe
// a partially updated collection.
package state

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hostelhive/hostelhive/internal/app/models"
	"github.com/hostelhive/hostelhive/internal/app/occupancy"
)

// IDGenerator produces opaque unique student identifiers. The default is
// uuid.NewString; tests inject a deterministic counter.
type IDGenerator func() string

// Container holds the two collections behind a read-write lock. Mutations
// build fresh slices and swap them in under the write lock (copy-on-write at
// whole-collection granularity), and every student mutation is followed by a
// full occupancy reconciliation before the swap becomes visible.
type Container struct {
	mu       sync.RWMutex
	students []models.Student
	rooms    []models.Room
	nextID   IDGenerator
}

// Option configures a Container.
type Option func(*Container)

// WithIDGenerator overrides the student ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Container) {
		c.nextID = gen
	}
}

// NewContainer seeds a container with copies of the given collections. Room
// state is reconciled once at construction so the seed's derived fields do
// not have to be trusted.
func NewContainer(students []models.Student, rooms []models.Room, opts ...Option) *Container {
	c := &Container{
		students: append([]models.Student(nil), students...),
		nextID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rooms = occupancy.Reconcile(rooms, c.students)
	return c
}

// Students returns a copy of the current student collection.
func (c *Container) Students() []models.Student {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Student(nil), c.students...)
}

// Rooms returns a copy of the current room collection.
func (c *Container) Rooms() []models.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Room(nil), c.rooms...)
}

// FindStudent returns the student with the given ID.
func (c *Container) FindStudent(id string) (models.Student, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.students {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

// FindRoom returns the room with the given number.
func (c *Container) FindRoom(number int) (models.Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.rooms {
		if r.RoomNumber == number {
			return r, true
		}
	}
	return models.Room{}, false
}

// AddStudent assigns a fresh ID, appends the record, and reconciles room
// state. The stored record is returned.
func (c *Container) AddStudent(student models.Student) models.Student {
	c.mu.Lock()
	defer c.mu.Unlock()

	student.ID = c.nextID()
	updated := make([]models.Student, 0, len(c.students)+1)
	updated = append(updated, c.students...)
	updated = append(updated, student)

	c.students = updated
	c.rooms = occupancy.Reconcile(c.rooms, updated)
	return student
}

// UpdateStudent replaces the record whose ID matches, preserving the ID, and
// reconciles room state. It reports whether a matching record existed; when
// none does the collections are left untouched.
func (c *Container) UpdateStudent(student models.Student) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]models.Student, len(c.students))
	found := false
	for i, s := range c.students {
		if s.ID == student.ID {
			updated[i] = student
			found = true
		} else {
			updated[i] = s
		}
	}
	if !found {
		return false
	}

	c.students = updated
	c.rooms = occupancy.Reconcile(c.rooms, updated)
	return true
}

// DeleteStudent removes the record with the given ID and reconciles room
// state. It reports whether a record was removed.
func (c *Container) DeleteStudent(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]models.Student, 0, len(c.students))
	found := false
	for _, s := range c.students {
		if s.ID == id {
			found = true
			continue
		}
		updated = append(updated, s)
	}
	if !found {
		return false
	}

	c.students = updated
	c.rooms = occupancy.Reconcile(c.rooms, updated)
	return true
}

// SetFeeStatus replaces only the fee status of the matching student. Room
// state is deliberately not reconciled: fee transitions cannot affect room
// membership. It reports whether a matching record existed.
func (c *Container) SetFeeStatus(id string, status models.FeeStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]models.Student, len(c.students))
	found := false
	for i, s := range c.students {
		if s.ID == id {
			s.FeeStatus = status
			found = true
		}
		updated[i] = s
	}
	if !found {
		return false
	}

	c.students = updated
	return true
}

// SetRoomMaintenance sets or clears the out-of-band Maintenance flag on a
// room. Clearing it hands the status back to the reconciler so the room
// rejoins the Occupied/Vacant derivation immediately. It reports whether the
// room exists.
func (c *Container) SetRoomMaintenance(number int, maintenance bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]models.Room, len(c.rooms))
	found := false
	for i, r := range c.rooms {
		if r.RoomNumber == number {
			found = true
			if maintenance {
				r.Status = models.RoomMaintenance
			} else if r.Status == models.RoomMaintenance {
				// Neutral placeholder; the reconcile below re-derives it.
				r.Status = models.RoomVacant
			}
		}
		updated[i] = r
	}
	if !found {
		return false
	}

	c.rooms = occupancy.Reconcile(updated, c.students)
	return true
}
