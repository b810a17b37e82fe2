// Package scaffold materializes a mod layout on disk. It creates the catalog's
// directory tree and the empty table files in either naming convention:
// monolithic <table>.tbl files, or modular <prefix><suffix>.tbm fragments for
// the tables that support them. Individual path failures are collected and
// returned instead of stopping the run.
package scaffold
