package store

import (
	"errors"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv is the on-disk substrate. Keys map one-to-one to files under the
// base path, so the whole store is greppable and trivially backed up.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a diskv-backed substrate rooted at the configured base path.
// A nil config falls back to LoadConfig.
func Open(cfg Config) (*Diskv, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} }, // flat layout
		CacheSizeMax: 1024 * 1024,                                 // 1MB
	}), basePath: basePath}, nil
}

func (v *Diskv) Read(key string) ([]byte, error) {
	data, err := v.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

func (v *Diskv) Write(key string, value []byte) error {
	return v.d.Write(key, value)
}

func (v *Diskv) Erase(key string) error {
	return v.d.Erase(key)
}

func (v *Diskv) Has(key string) bool {
	return v.d.Has(key)
}

func (v *Diskv) Keys() []string {
	keys := make([]string, 0, 8)
	for key := range v.d.Keys(nil) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BasePath reports the directory the substrate writes under, for watchers.
func (v *Diskv) BasePath() string {
	return v.basePath
}
