package ui

import "github.com/sirupsen/logrus"

// Key addresses one stored result.
type Key struct {
	Kind Kind
	ID   ID
}

// Store keeps the last result of every stateful widget, keyed by kind and
// ID. Entries live until they are forgotten. The zero value is ready to use.
type Store struct {
	values map[Key]any
	order  []Key // first-commit order, oldest first
	log    *logrus.Entry
}

func NewStore(log *logrus.Entry) *Store {
	return &Store{values: make(map[Key]any, 64), log: log}
}

// Load returns the value last committed for (kind, id). A value of another
// type than R counts as absent and yields R's zero value.
func Load[R any](s *Store, kind Kind, id ID) (R, bool) {
	var zero R
	v, ok := s.values[Key{kind, id}]
	if !ok {
		return zero, false
	}
	r, ok := v.(R)
	if !ok {
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"kind": kind.String(),
				"id":   string(id),
			}).Debugf("stored %T does not match %T, using default", v, zero)
		}
		return zero, false
	}
	return r, true
}

// Commit inserts or overwrites the value for (kind, id).
func (s *Store) Commit(kind Kind, id ID, v any) {
	if s.values == nil {
		s.values = make(map[Key]any, 64)
	}
	k := Key{kind, id}
	if _, ok := s.values[k]; !ok {
		s.order = append(s.order, k)
	}
	s.values[k] = v
}

// Forget removes the oldest entry stored under id, whatever its kind, and
// reports whether there was one.
func (s *Store) Forget(id ID) bool {
	for i, k := range s.order {
		if k.ID == id {
			s.remove(i)
			return true
		}
	}
	return false
}

// ForgetKind removes the entry for (kind, id) only.
func (s *Store) ForgetKind(kind Kind, id ID) bool {
	for i, k := range s.order {
		if k.Kind == kind && k.ID == id {
			s.remove(i)
			return true
		}
	}
	return false
}

func (s *Store) remove(i int) {
	k := s.order[i]
	delete(s.values, k)
	s.order = append(s.order[:i], s.order[i+1:]...)
	if s.log != nil {
		s.log.WithFields(logrus.Fields{"kind": k.Kind.String(), "id": string(k.ID)}).Debug("forgot stored state")
	}
}

// Has reports whether anything is stored for (kind, id).
func (s *Store) Has(kind Kind, id ID) bool {
	_, ok := s.values[Key{kind, id}]
	return ok
}

func (s *Store) Len() int { return len(s.values) }
