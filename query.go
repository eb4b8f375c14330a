package dmidecode

import "github.com/pkg/errors"

type LookupStatus uint8

const (
	Found LookupStatus = iota
	TypeNotFound
	KeyNotFound
)

func (ls LookupStatus) String() string {
	switch ls {
	case Found:
		return "found"
	case TypeNotFound:
		return "type not found"
	default:
		return "key not found"
	}
}

// Lookup returns the value of the first property named key within the type group,
// scanning records in parse order. The status tells an absent type from an absent key.
func (s *Store) Lookup(typeID int, key string) (string, LookupStatus) {
	if e, ok := s.keys[indexKey(typeID, key)]; ok && e.typeID == typeID && e.key == key {
		return e.value, Found
	}

	g := s.findGroup(typeID)
	if g == nil {
		return "", TypeNotFound
	}

	// the index keeps the first writer per hash, a colliding key lands here
	for _, rec := range g.records {
		if v, ok := rec.Get(key); ok {
			return v, Found
		}
	}

	return "", KeyNotFound
}

// GetValueByKey is Lookup without the status: an absent type and an absent key
// both yield an empty string.
func (s *Store) GetValueByKey(typeID int, key string) string {
	v, _ := s.Lookup(typeID, key)
	return v
}

// Value is Lookup reporting ErrTypeNotFound or ErrKeyNotFound
func (s *Store) Value(typeID int, key string) (string, error) {
	v, status := s.Lookup(typeID, key)
	switch status {
	case TypeNotFound:
		return "", errors.Wrapf(ErrTypeNotFound, "type %d", typeID)
	case KeyNotFound:
		return "", errors.Wrapf(ErrKeyNotFound, "key %q in type %d", key, typeID)
	}

	return v, nil
}

// LookupAll returns the value of every property named key across the type group
func (s *Store) LookupAll(typeID int, key string) []string {
	g := s.findGroup(typeID)
	if g == nil {
		return nil
	}

	var result []string
	for _, rec := range g.records {
		for _, p := range rec.Properties {
			if p.Key == key {
				result = append(result, p.Value)
			}
		}
	}

	return result
}
