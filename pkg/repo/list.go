// Package repo provides ordered-collection and workbook repositories over
// the keyed store. Every mutation rewrites its whole document; collections
// are expected to stay in the hundreds, so simplicity wins over deltas.
package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"tableflip.dev/recovery/pkg/record"
	"tableflip.dev/recovery/pkg/store"
)

// ErrNotFound is returned by mutations addressing an id the collection does
// not hold. Callers surface it as "nothing changed", never as a crash.
var ErrNotFound = errors.New("repo: record not found")

// Kind configures a list repository for one collection.
type Kind struct {
	Name        string
	Key         string
	Completable bool
}

var (
	Journal = Kind{Name: "journal", Key: store.KeyJournal}
	Goals   = Kind{Name: "goals", Key: store.KeyGoals, Completable: true}
)

// List is a generic repository over one ordered record collection. The
// stored order is always descending by timestamp; identity is the record id.
type List struct {
	kind  Kind
	store *store.Store
	now   func() time.Time
}

func NewList(s *store.Store, kind Kind) *List {
	return &List{kind: kind, store: s, now: time.Now}
}

// Kind reports the collection configuration.
func (l *List) Kind() Kind {
	return l.kind
}

// LoadAll reads, decodes, and sorts the collection. Elements that fail to
// decode are skipped with a note on stderr; malformed data must never brick
// the caller.
func (l *List) LoadAll() []record.Record {
	raw := l.store.LoadList(l.kind.Key)
	records := make([]record.Record, 0, len(raw))
	for _, element := range raw {
		var w record.Wire
		if err := json.Unmarshal(element, &w); err != nil {
			fmt.Fprintf(os.Stderr, "repo: skip bad %s element: %v\n", l.kind.Name, err)
			continue
		}
		records = append(records, record.Decode(w))
	}
	sortRecords(records)
	return records
}

// Create builds a record with a fresh id and a timestamp of now, then
// persists the whole collection. Physical position is determined by the
// timestamp sort, not insertion order.
func (l *List) Create(text string) (record.Record, error) {
	r := record.Record{
		ID:        store.GenerateID(),
		Text:      text,
		Timestamp: l.now().UTC().Truncate(time.Millisecond),
	}
	records := append(l.LoadAll(), r)
	if err := l.persist(records); err != nil {
		return record.Record{}, err
	}
	return r, nil
}

// Update replaces the text of the matching record and bumps its timestamp;
// an edit is a new version, so it moves to the head of the collection.
func (l *List) Update(id, text string) (record.Record, error) {
	records := l.LoadAll()
	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Text = text
		records[i].Timestamp = l.now().UTC().Truncate(time.Millisecond)
		if err := l.persist(records); err != nil {
			return record.Record{}, err
		}
		return records[i], nil
	}
	return record.Record{}, ErrNotFound
}

// ToggleCompletion flips the completed flag without touching the timestamp,
// so toggling never reorders the list. On kinds without completion support
// it is a deliberate no-op, not an error.
func (l *List) ToggleCompletion(id string) (record.Record, error) {
	if !l.kind.Completable {
		return record.Record{}, nil
	}
	records := l.LoadAll()
	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Completed = !records[i].Completed
		if err := l.persist(records); err != nil {
			return record.Record{}, err
		}
		return records[i], nil
	}
	return record.Record{}, ErrNotFound
}

// Remove filters the id out and persists. Removing an absent id is
// idempotent.
func (l *List) Remove(id string) error {
	records := l.LoadAll()
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return l.persist(kept)
}

// Find returns the record with the given id, or a prefix match when exactly
// one record matches. Lets the CLI accept shortened ids.
func (l *List) Find(id string) (record.Record, error) {
	records := l.LoadAll()
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	var hit *record.Record
	for i := range records {
		if strings.HasPrefix(records[i].ID, id) {
			if hit != nil {
				return record.Record{}, fmt.Errorf("repo: id %q is ambiguous", id)
			}
			hit = &records[i]
		}
	}
	if hit == nil {
		return record.Record{}, ErrNotFound
	}
	return *hit, nil
}

func (l *List) persist(records []record.Record) error {
	sortRecords(records)
	wire := make([]record.Wire, 0, len(records))
	for _, r := range records {
		wire = append(wire, record.Encode(r, l.kind.Completable))
	}
	return l.store.SaveList(l.kind.Key, wire)
}

// sortRecords orders newest first, with the id as a stable tie break.
func sortRecords(records []record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].ID < records[j].ID
		}
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}
