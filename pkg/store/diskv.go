package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/catalog"
	"tableflip.dev/daybook/pkg/record"
)

// Persistence is the key-value boundary under the record store: JSON records
// written incrementally by id, one bucket per journal.
type Persistence interface {
	ListAll(ctx context.Context) []*record.Record
	List(ctx context.Context, journal catalog.Journal) []*record.Record
	Store(r *record.Record) error
	Delete(r *record.Record) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*record.Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := record.Record{}
	if err := json.Unmarshal(val, &r); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	r.ID = pk.FileName
	if len(pk.Path) > 0 {
		r.Journal = catalog.Journal(pk.Path[0])
	}
	return &r, nil
}

func (p *persistence) ListAll(ctx context.Context) []*record.Record {
	all := make([]*record.Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (p *persistence) List(ctx context.Context, journal catalog.Journal) []*record.Record {
	all := make([]*record.Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) > 0 && pk.Path[0] == string(journal) {
			r, err := p.read(key)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
				continue
			}
			all = append(all, r)
		}
	}
	sortRecords(all)
	return all
}

func (p *persistence) Store(r *record.Record) error {
	key := toKey(r)
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return err
	}
	return nil
}

func (p *persistence) Delete(r *record.Record) error {
	key := toKey(r)
	err := p.d.Erase(key)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func sortRecords(records []*record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left := records[i]
		right := records[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// NewID returns a fresh record id. Dashes are stripped because the diskv key
// transform splits on them.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

const layoutISO = "2006-01-02"

// toKey makes `journal-date-id`, which the path transform turns into
// journal/year/month/day/id on disk.
func toKey(r *record.Record) string {
	then := r.Created.Format(layoutISO)

	if r.ID == "" {
		r.ID = NewID()
	}

	return fmt.Sprintf("%s-%s-%s", r.Journal, then, r.ID)
}
