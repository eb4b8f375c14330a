package dmidecode

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/denismitr/dmidecode/internal/scan"
	"github.com/jinzhu/copier"
	"github.com/tidwall/btree"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const castPanic = "how could groups item not be of type *group"

// group - records sharing a DMI type id, in parse order
type group struct {
	typeID  int
	records []*Record
}

func byTypeID(a, b interface{}) bool {
	return a.(*group).typeID < b.(*group).typeID
}

type indexEntry struct {
	typeID int
	key    string
	value  string
}

// Store holds every parsed record grouped by DMI type id.
// It is built once and never mutated afterwards, so all read methods
// are safe for concurrent use.
type Store struct {
	cfg      *Config
	groups   *btree.BTree
	keys     map[uint64]indexEntry
	preamble []string
	skipped  []*SectionError
	count    int
}

// New parses a dmidecode report.
// Rejected sections fail the call only in strict mode, see WithStrict.
func New(text string, opts ...Option) (*Store, error) {
	return Parse(text, newConfig(opts...))
}

// Parse is New with an explicit Config; a nil cfg means defaults.
func Parse(text string, cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &Store{
		groups: btree.New(byTypeID),
		keys:   make(map[uint64]indexEntry),
	}
	cfg.applyTo(s)

	preamble, blocks, err := scan.Split(text)
	if err != nil {
		return nil, err
	}
	s.preamble = preamble

	var errs error
	for _, b := range blocks {
		rec, err := parseRecord(b, cfg)
		if err != nil {
			se := &SectionError{Line: b.Line, Header: b.Lines[0], Err: err}
			s.skipped = append(s.skipped, se)
			errs = multierr.Append(errs, se)

			cfg.Logger.Warn("skipping section",
				zap.Int("line", b.Line),
				zap.String("header", b.Lines[0]),
				zap.Error(err))
			continue
		}

		s.insert(rec)
	}

	cfg.Logger.Debug("report parsed",
		zap.Int("records", s.count),
		zap.Int("types", s.groups.Len()),
		zap.Int("skipped", len(s.skipped)),
		zap.Int("preamble", len(s.preamble)))

	if cfg.Strict && errs != nil {
		return nil, errs
	}

	return s, nil
}

func (s *Store) insert(rec *Record) {
	g := s.findGroup(rec.TypeID)
	if g == nil {
		g = &group{typeID: rec.TypeID}
		s.groups.Set(g)
	}

	g.records = append(g.records, rec)
	s.count++

	for _, p := range rec.Properties {
		h := indexKey(rec.TypeID, p.Key)
		if _, ok := s.keys[h]; !ok {
			s.keys[h] = indexEntry{typeID: rec.TypeID, key: p.Key, value: p.Value}
		}
	}
}

func (s *Store) findGroup(typeID int) *group {
	found := s.groups.Get(&group{typeID: typeID})
	if found == nil {
		return nil
	}

	g, ok := found.(*group)
	if !ok {
		panic(castPanic)
	}

	return g
}

// ascend walks the groups in ascending type id order
func (s *Store) ascend(fn func(g *group) bool) {
	s.groups.Ascend(nil, func(item interface{}) bool {
		g, ok := item.(*group)
		if !ok {
			panic(castPanic)
		}

		return fn(g)
	})
}

// Count returns the total number of records
func (s *Store) Count() int {
	return s.count
}

// Has reports whether any record of the type was parsed
func (s *Store) Has(typeID int) bool {
	return s.findGroup(typeID) != nil
}

// TypeIDs returns the parsed type ids in ascending order
func (s *Store) TypeIDs() []int {
	ids := make([]int, 0, s.groups.Len())
	s.ascend(func(g *group) bool {
		ids = append(ids, g.typeID)
		return true
	})

	return ids
}

// Group returns copies of the records of a type, in parse order.
func (s *Store) Group(typeID int) ([]Record, bool) {
	g := s.findGroup(typeID)
	if g == nil {
		return nil, false
	}

	result := make([]Record, len(g.records))
	for i, rec := range g.records {
		result[i] = rec.clone()
	}

	return result, true
}

// Records returns copies of all records, ascending by type id.
func (s *Store) Records() []Record {
	result := make([]Record, 0, s.count)
	s.ascend(func(g *group) bool {
		for _, rec := range g.records {
			result = append(result, rec.clone())
		}
		return true
	})

	return result
}

// Preamble returns the lines that preceded the first Handle line
func (s *Store) Preamble() []string {
	return append([]string(nil), s.preamble...)
}

// Skipped returns the sections rejected while parsing
func (s *Store) Skipped() []*SectionError {
	return append([]*SectionError(nil), s.skipped...)
}

func (r *Record) clone() Record {
	var cp Record
	if err := copier.CopyWithOption(&cp, r, copier.Option{DeepCopy: true}); err != nil {
		panic("could not copy record + " + err.Error())
	}

	return cp
}

func indexKey(typeID int, key string) uint64 {
	bs := make([]byte, 0, len(key)+8)
	bs = strconv.AppendInt(bs, int64(typeID), 10)
	bs = append(bs, 0)
	bs = append(bs, key...)
	return xxhash.Sum64(bs)
}
