package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var catalogBytes []byte

// TablesDir is the directory, relative to the mod root, that holds every table file.
const TablesDir = "tables"

// SupportedFormat is the range of catalog format versions this build understands.
const SupportedFormat = "^1.0.0"

// ErrInvalid is wrapped by every catalog load failure.
var ErrInvalid = errors.New("invalid catalog")

// DirectoryEntry is one top-level directory of the mod layout.
type DirectoryEntry struct {
	Name           string   `yaml:"name"`
	Subdirectories []string `yaml:"subdirectories,omitempty"`
	// HoldsTables marks the directory owned by the table materializer.
	HoldsTables bool `yaml:"holds_tables,omitempty"`
}

// TableEntry describes one engine data table.
type TableEntry struct {
	BaseName      string `yaml:"name"`
	IsModular     bool   `yaml:"modular,omitempty"`
	ModularSuffix string `yaml:"modular_suffix,omitempty"` // e.g. "-aic"
}

// Catalog is the read-only directory and table layout. Accessors hand out
// copies, so a Catalog can be shared for the lifetime of the process.
type Catalog struct {
	formatVersion *semver.Version
	directories   []DirectoryEntry
	tables        []TableEntry
}

type document struct {
	FormatVersion string           `yaml:"format_version"`
	Directories   []DirectoryEntry `yaml:"directories"`
	Tables        []TableEntry     `yaml:"tables"`
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
	defaultErr     error
)

// Default returns the catalog compiled into the binary. It is parsed and
// validated once; later calls return the same result.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogBytes)
	})
	return defaultCatalog, defaultErr
}

// Parse validates raw catalog YAML and builds a Catalog from it.
func Parse(data []byte) (*Catalog, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, result)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding YAML: %w", ErrInvalid, err)
	}

	version, err := checkFormatVersion(doc.FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := checkDirectories(doc.Directories); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := checkTables(doc.Tables); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return &Catalog{
		formatVersion: version,
		directories:   doc.Directories,
		tables:        doc.Tables,
	}, nil
}

// FormatVersion returns the catalog's format version.
func (c *Catalog) FormatVersion() string {
	return c.formatVersion.String()
}

// Directories returns every directory entry in catalog order.
func (c *Catalog) Directories() []DirectoryEntry {
	return cloneDirectories(c.directories, func(DirectoryEntry) bool { return true })
}

// ModDirectories returns the directory entries that do not belong to the
// table materializer.
func (c *Catalog) ModDirectories() []DirectoryEntry {
	return cloneDirectories(c.directories, func(d DirectoryEntry) bool { return !d.HoldsTables })
}

// Tables returns every table entry in catalog order.
func (c *Catalog) Tables() []TableEntry {
	return slices.Clone(c.tables)
}

// Table looks up a table entry by base name.
func (c *Catalog) Table(baseName string) (TableEntry, bool) {
	i := slices.IndexFunc(c.tables, func(t TableEntry) bool { return t.BaseName == baseName })
	if i < 0 {
		return TableEntry{}, false
	}
	return c.tables[i], true
}

func cloneDirectories(src []DirectoryEntry, keep func(DirectoryEntry) bool) []DirectoryEntry {
	out := make([]DirectoryEntry, 0, len(src))
	for _, d := range src {
		if !keep(d) {
			continue
		}
		d.Subdirectories = slices.Clone(d.Subdirectories)
		out = append(out, d)
	}
	return out
}
