package scaffold

import (
	"path"

	"github.com/fsmod-labs/fsmod/internal/catalog"
)

// CreateMonolithicTables writes an empty tables/<name>.tbl for every entry,
// modular or not.
func (m *Materializer) CreateMonolithicTables(root string, tables []catalog.TableEntry) []*PathError {
	return m.createTables(root, tables, monolithicName)
}

// CreateModularTables writes an empty tables/<prefix><suffix>.tbm for every
// modular entry and tables/<name>.tbl for the rest. prefix is assumed valid.
func (m *Materializer) CreateModularTables(root string, tables []catalog.TableEntry, prefix string) []*PathError {
	return m.createTables(root, tables, func(t catalog.TableEntry) string {
		return modularName(t, prefix)
	})
}

// CreateStaticTables writes each of names verbatim under tables/.
func (m *Materializer) CreateStaticTables(root string, names []string) []*PathError {
	dir := path.Join(root, catalog.TablesDir)

	var errs []*PathError
	if err := m.ensureDir(dir); err != nil {
		errs = append(errs, err)
	}
	for _, name := range names {
		if err := m.createEmpty(path.Join(dir, name)); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (m *Materializer) createTables(root string, tables []catalog.TableEntry, fileName func(catalog.TableEntry) string) []*PathError {
	dir := path.Join(root, catalog.TablesDir)

	var errs []*PathError
	if err := m.ensureDir(dir); err != nil {
		errs = append(errs, err)
	}
	for _, t := range tables {
		if err := m.createEmpty(path.Join(dir, fileName(t))); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
