package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/collection"
)

// Options names the files kept in the config and storage directories.
type Options struct {
	// ConfigFile is the config file name inside the config directory.
	ConfigFile string
	// DefaultList is the list used on first run.
	DefaultList string
	// BackupSuffix is appended to a list's file name to name its backup.
	BackupSuffix string
	// LockFile is the advisory lock file name inside the config directory.
	LockFile string
}

// DefaultOptions returns the stock file names.
func DefaultOptions() Options {
	return Options{
		ConfigFile:   "todo.config",
		DefaultList:  "todo.data",
		BackupSuffix: ".bk",
		LockFile:     "todo.lock",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ConfigFile == "" {
		o.ConfigFile = d.ConfigFile
	}
	if o.DefaultList == "" {
		o.DefaultList = d.DefaultList
	}
	if o.BackupSuffix == "" {
		o.BackupSuffix = d.BackupSuffix
	}
	if o.LockFile == "" {
		o.LockFile = d.LockFile
	}
	return o
}

// Remover deletes a list's storage file.
type Remover interface {
	Remove(name string) error
}

// Config tracks the storage directory, the active list and the known lists.
type Config struct {
	dir     string
	dataDir string
	active  string
	known   *collection.Names
	opts    Options
	log     *log.Logger
}

// configFile is the persisted shape of Config.
type configFile struct {
	DataDirName  string   `json:"data_dir_name"`
	DataFileName string   `json:"data_file_name"`
	DataList     []string `json:"data_list"`
}

// LoadConfig reads the config file in dir. A missing or unparsable file is
// replaced with defaults and written back; a parse failure is only logged.
func LoadConfig(dir string, opts Options, logger *log.Logger) (*Config, error) {
	if logger == nil {
		logger = log.Default()
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("store: expand config dir: %w", err)
	}
	if dir == "" {
		return nil, errors.New("store: config dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure config dir: %w", err)
	}

	c := defaultConfig(dir, opts.withDefaults(), logger)
	path := c.Path()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("store: stat config: %w", err)
		}
		logger.Debug("config not found, writing defaults", "path", path)
		return c, c.Save()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var perr viper.ConfigParseError
		if !errors.As(err, &perr) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
		logger.Warn("config unreadable, resetting to defaults", "path", path, "err", err)
		return c, c.Save()
	}

	if name := v.GetString("data_file_name"); name != "" {
		c.active = name
	}
	if d := v.GetString("data_dir_name"); d != "" {
		expanded, err := homedir.Expand(d)
		if err != nil {
			return nil, fmt.Errorf("store: expand data dir: %w", err)
		}
		c.dataDir = expanded
	}
	c.known = collection.NewNames(v.GetStringSlice("data_list")...)
	logger.Debug("config loaded", "path", path, "active", c.active, "known", c.known.Len())
	return c, nil
}

func defaultConfig(dir string, opts Options, logger *log.Logger) *Config {
	return &Config{
		dir:     dir,
		dataDir: dir,
		active:  opts.DefaultList,
		known:   collection.NewNames(opts.DefaultList),
		opts:    opts,
		log:     logger,
	}
}

// Dir is the config directory.
func (c *Config) Dir() string {
	return c.dir
}

// DataDir is the directory holding list and backup files.
func (c *Config) DataDir() string {
	return c.dataDir
}

// Path is the config file path.
func (c *Config) Path() string {
	return filepath.Join(c.dir, c.opts.ConfigFile)
}

// Options returns the file naming in effect.
func (c *Config) Options() Options {
	return c.opts
}

// ActiveList is the name of the list commands operate on.
func (c *Config) ActiveList() string {
	return c.active
}

// KnownLists returns the known list names, most recently used last.
func (c *Config) KnownLists() []string {
	return c.known.Slice()
}

// SetActiveList switches to name, records it as known and writes the config.
// Saving the previous list first is the caller's job.
func (c *Config) SetActiveList(name string) error {
	c.active = name
	c.known.Add(name)
	return c.Save()
}

// RemoveActiveListFile deletes the active list's file, forgets its name and
// writes the config.
func (c *Config) RemoveActiveListFile(r Remover) error {
	if err := r.Remove(c.active); err != nil {
		return err
	}
	c.known.Remove(c.active)
	return c.Save()
}

// Save writes the config file, replacing it atomically.
func (c *Config) Save() error {
	data, err := json.Marshal(configFile{
		DataDirName:  c.dataDir,
		DataFileName: c.active,
		DataList:     c.known.Slice(),
	})
	if err != nil {
		return err
	}
	path := c.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("store: write config: %w", err)
	}
	c.log.Debug("config saved", "path", path)
	return nil
}
