// Package store owns the persisted key space: typed loads and saves over a
// pluggable key-value substrate, with parse failures contained here so
// callers always get a usable default instead of an error.
package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/recovery/pkg/record"
)

// Store is the typed facade over the substrate. All JSON encoding and
// decoding for the tracked keys happens here.
type Store struct {
	s Substrate
}

func New(s Substrate) *Store {
	return &Store{s: s}
}

// Load opens the default on-disk store using the provided config (nil means
// the viper-resolved config).
func Load(cfg Config) (*Store, error) {
	d, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Substrate exposes the underlying port, mainly so callers can reach the
// watcher on disk-backed stores.
func (s *Store) Substrate() Substrate {
	return s.s
}

// LoadList returns the raw elements stored under a list key. Absent keys and
// documents that fail to parse both degrade to an empty list; the failure is
// logged, never surfaced. Per-element decoding is the repository's job so a
// single bad record can be skipped without dropping its siblings.
func (s *Store) LoadList(key string) []json.RawMessage {
	data, err := s.s.Read(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		}
		return []json.RawMessage{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		fmt.Fprintf(os.Stderr, "store: parse %s: %v\n", key, err)
		return []json.RawMessage{}
	}
	return items
}

// SaveList serializes and rewrites the whole collection. There is no delta
// path; collections stay small enough that whole-document rewrites are the
// simpler and more durable trade.
func (s *Store) SaveList(key string, items []record.Wire) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.s.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	s.ensureSchema()
	return nil
}

// LoadMap returns the sparse string map under a key, empty on absence or
// parse failure.
func (s *Store) LoadMap(key string) map[string]string {
	data, err := s.s.Read(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		}
		return map[string]string{}
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		fmt.Fprintf(os.Stderr, "store: parse %s: %v\n", key, err)
		return map[string]string{}
	}
	return m
}

func (s *Store) SaveMap(key string, m map[string]string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.s.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	s.ensureSchema()
	return nil
}

// LoadDate returns the sobriety start date, or nil when it was never set or
// cannot be parsed. A nil date means onboarding has not completed; it is not
// an error condition.
func (s *Store) LoadDate() *time.Time {
	data, err := s.s.Read(KeySobriety)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", KeySobriety, err)
		}
		return nil
	}
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	t, err := record.ParseTime(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: parse %s: %v\n", KeySobriety, err)
		return nil
	}
	t = t.UTC()
	return &t
}

// SaveDate writes the date verbatim as an ISO-8601 string, not JSON-wrapped.
func (s *Store) SaveDate(t time.Time) error {
	value := t.UTC().Format(record.LayoutMillis)
	if err := s.s.Write(KeySobriety, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", KeySobriety, err)
	}
	s.ensureSchema()
	return nil
}

// LoadFlag reports whether the welcome tip was dismissed; anything but the
// literal "true" reads as false.
func (s *Store) LoadFlag() bool {
	data, err := s.s.Read(KeyWelcomeTip)
	if err != nil {
		return false
	}
	return string(data) == "true"
}

func (s *Store) SaveFlag(dismissed bool) error {
	if err := s.s.Write(KeyWelcomeTip, []byte(strconv.FormatBool(dismissed))); err != nil {
		return fmt.Errorf("store: write %s: %w", KeyWelcomeTip, err)
	}
	return nil
}

// LoadDraft returns the autosaved journal draft, empty when there is none.
func (s *Store) LoadDraft() string {
	data, err := s.s.Read(KeyJournalDraft)
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *Store) SaveDraft(text string) error {
	if err := s.s.Write(KeyJournalDraft, []byte(text)); err != nil {
		return fmt.Errorf("store: write %s: %w", KeyJournalDraft, err)
	}
	return nil
}

func (s *Store) ClearDraft() error {
	return s.s.Erase(KeyJournalDraft)
}

// LoadAll snapshots every data key for export. Values that parse as JSON are
// included parsed; anything else is included as its raw string, so a corrupt
// key degrades to a string in the export instead of silently vanishing.
// Absent keys are omitted. The welcome tip flag and scratch draft never
// appear.
func (s *Store) LoadAll() map[string]any {
	all := make(map[string]any, 4)
	for _, key := range DataKeys() {
		data, err := s.s.Read(key)
		if err != nil {
			if !errors.Is(err, ErrKeyNotFound) {
				fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
			}
			continue
		}
		if len(data) == 0 {
			continue
		}
		var parsed any
		if err := json.Unmarshal(data, &parsed); err != nil {
			all[key] = string(data)
			continue
		}
		all[key] = parsed
	}
	return all
}

// ensureSchema stamps the store with its layout version on first write.
func (s *Store) ensureSchema() {
	if s.s.Has(KeySchema) {
		return
	}
	if err := s.s.Write(KeySchema, []byte(SchemaVersion)); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", KeySchema, err)
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID produces a collision-resistant record id: the current unix
// millisecond in base 36 followed by five random base-36 characters. A
// collision would need two creations in the same millisecond drawing the
// same suffix; that is treated as not practically possible.
func GenerateID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return prefix + strconv.FormatInt(time.Now().UnixNano()%int64(1<<25), 36)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return prefix + string(buf)
}
