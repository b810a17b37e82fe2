// Package operation defines the validated generation request (Config) and
// parses the single-dash command line (-stdm, -stdmc, -tbl, -tbm, -debug)
// into it. All argument rules are enforced here, before any filesystem work.
package operation
