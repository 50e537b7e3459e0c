// Package project locates and decodes the syntek.toml manifest.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file searched for by Find.
const ManifestName = "syntek.toml"

// SourceExt is the extension of syntek source files.
const SourceExt = ".stk"

// ErrNoManifest is returned by Load when no manifest exists above the start dir.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

type Manifest struct {
	Path   string // абсолютный путь к syntek.toml
	Root   string // каталог манифеста
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
	Cache   CacheConfig   `toml:"cache"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	// Sources - каталоги или файлы относительно Root.
	Sources   []string `toml:"sources"`
	MaxErrors int      `toml:"max_errors"`
	ErrorMode string   `toml:"error_mode"` // abort | collect
	TabWidth  int      `toml:"tab_width"`
	Jobs      int      `toml:"jobs"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultConfig is what `syntek init` writes.
func DefaultConfig(name string) Config {
	return Config{
		Package: PackageConfig{Name: name},
		Build: BuildConfig{
			Sources:   []string{"src"},
			MaxErrors: 100,
			ErrorMode: "collect",
			TabWidth:  4,
		},
		Cache: CacheConfig{Enabled: true, Dir: ".syntek/cache"},
	}
}

// Find walks up from startDir to locate syntek.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and decodes the manifest above startDir.
func Load(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, nil
}

// LoadConfig decodes and validates a manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if !meta.IsDefined("build", "sources") {
		cfg.Build.Sources = []string{"."}
	}
	if !meta.IsDefined("build", "tab_width") {
		cfg.Build.TabWidth = 4
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Build.ErrorMode {
	case "", "abort", "collect":
	default:
		return fmt.Errorf("[build].error_mode must be abort or collect, got %q", c.Build.ErrorMode)
	}
	if c.Build.TabWidth < 1 || c.Build.TabWidth > 16 {
		return fmt.Errorf("[build].tab_width must be in 1..16, got %d", c.Build.TabWidth)
	}
	if c.Build.MaxErrors < 0 {
		return fmt.Errorf("[build].max_errors must not be negative")
	}
	if c.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs must not be negative")
	}
	return nil
}

// Encode renders cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// SourcePaths returns [build].sources resolved against the manifest root.
func (m *Manifest) SourcePaths() []string {
	out := make([]string, 0, len(m.Config.Build.Sources))
	for _, s := range m.Config.Build.Sources {
		out = append(out, filepath.Join(m.Root, filepath.FromSlash(s)))
	}
	return out
}

// CacheDir returns the absolute cache directory, or "" when caching is off.
func (m *Manifest) CacheDir() string {
	if !m.Config.Cache.Enabled {
		return ""
	}
	dir := m.Config.Cache.Dir
	if dir == "" {
		dir = ".syntek/cache"
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}
