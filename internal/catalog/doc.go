// Package catalog holds the fixed layout of a FreeSpace mod: the directories
// to create, the data tables the engine reads, and which of those tables can
// be extended by modular .tbm fragments. The layout is compiled into the
// binary from catalog.yaml and validated against an embedded JSON schema the
// first time it is loaded.
package catalog
