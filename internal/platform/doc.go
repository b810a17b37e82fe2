// Package platform smooths over operating-system differences in filesystem
// permission handling. On Windows, Unix permission bits are ignored.
package platform
