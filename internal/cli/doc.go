// Package cli wires the fsmod command line to the internal packages. The
// command line uses single-dash words (-stdm, -stdmc, -tbm, ...) rather than
// POSIX flags, so Cobra's flag parsing is disabled and the arguments are
// handed to the operation package as-is.
package cli
