package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/podratz/note/pkg/dates"
)

// Record is one note-open event.
type Record struct {
	Path   string    `json:"path"`
	Title  string    `json:"title,omitempty"`
	Opened Timestamp `json:"opened"`

	// ID is derived from the record contents and doubles as the storage
	// key suffix.
	ID string `json:"-"`
}

// Persistence defines the persistence contract for note-open history.
type Persistence interface {
	List(ctx context.Context) []*Record
	Store(r *Record) error
}

// LoadHistory creates a Persistence backed by diskv using the provided config.
func LoadHistory(cfg Config) (Persistence, error) {
	basePath, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	return &history{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type history struct {
	d *diskv.Diskv
}

func (h *history) read(key string) (*Record, error) {
	val, err := h.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	r.ID = pk.FileName
	return r, nil
}

func (h *history) List(ctx context.Context) []*Record {
	all := make([]*Record, 0)
	for key := range h.d.Keys(ctx.Done()) {
		r, err := h.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (h *history) Store(r *Record) error {
	if r.Opened.IsZero() {
		r.Opened = Timestamp{Time: time.Now()}
	}
	key := toKey(r)
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return h.d.Write(key, data)
}

// sortRecords orders newest first.
func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left := records[i]
		right := records[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Opened.Time
		rt := right.Opened.Time
		if lt.Equal(rt) {
			return left.ID > right.ID
		}
		return lt.After(rt)
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

// toKey makes `date-id`
func toKey(r *Record) string {
	then := r.Opened.Format(dates.LayoutISO)

	if r.ID == "" {
		b, _ := json.Marshal(r)
		id := md5.Sum(b)
		r.ID = fmt.Sprintf("%x", id[:8])
	}

	return fmt.Sprintf("%s-%s", then, r.ID)
}
