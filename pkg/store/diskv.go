// Package store persists todo lists, their backups and the config file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/todo/pkg/collection"
)

// ErrCorrupt is wrapped when a persisted list cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt list file")

// Lists stores one file per list name, plus one backup file per list, in a
// single flat directory.
type Lists struct {
	d      *diskv.Diskv
	dir    string
	suffix string
	log    *log.Logger
}

// NewLists returns list storage rooted at dir.
func NewLists(dir string, opts Options, logger *log.Logger) *Lists {
	if logger == nil {
		logger = log.Default()
	}
	opts = opts.withDefaults()
	return &Lists{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: flatTransform,
			InverseTransform:  flatInverseTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		dir:    dir,
		suffix: opts.BackupSuffix,
		log:    logger,
	}
}

// Path is the file holding the named list.
func (l *Lists) Path(name string) string {
	return filepath.Join(l.dir, name)
}

// BackupPath is the file holding the named list's backup.
func (l *Lists) BackupPath(name string) string {
	return filepath.Join(l.dir, l.backupKey(name))
}

// Load reads the named list. An absent file is an empty list.
func (l *Lists) Load(name string) (*collection.List, error) {
	list, ok, err := l.read(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		l.log.Debug("list not found, starting empty", "name", name)
		return collection.New(), nil
	}
	return list, nil
}

// Save overwrites the named list's file.
func (l *Lists) Save(name string, list *collection.List) error {
	return l.write(name, list)
}

// Backup overwrites the named list's single backup slot.
func (l *Lists) Backup(name string, list *collection.List) error {
	return l.write(l.backupKey(name), list)
}

// Restore reads the named list's backup; ok is false when there is none.
func (l *Lists) Restore(name string) (*collection.List, bool, error) {
	return l.read(l.backupKey(name))
}

// Remove deletes the named list's file. A missing file is not an error.
func (l *Lists) Remove(name string) error {
	if !l.d.Has(name) {
		return nil
	}
	if err := l.d.Erase(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: remove %s: %w", l.Path(name), err)
	}
	l.log.Debug("list removed", "name", name)
	return nil
}

func (l *Lists) backupKey(name string) string {
	return name + l.suffix
}

func (l *Lists) read(key string) (*collection.List, bool, error) {
	val, err := l.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", l.Path(key), err)
	}
	list := collection.New()
	if err := json.Unmarshal(val, list); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, l.Path(key), err)
	}
	return list, true, nil
}

func (l *Lists) write(key string, list *collection.List) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if err := l.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", l.Path(key), err)
	}
	l.log.Debug("list written", "key", key, "items", list.Len())
	return nil
}

// flatTransform keeps every key as a file directly under the base path.
func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func flatInverseTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
