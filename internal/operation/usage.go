package operation

import "fmt"

// Usage returns the full help text for the given program name.
func Usage(name string) string {
	return fmt.Sprintf(`Usage: %[1]s <command> <path> [-tbl | -tbm <prefix>] [-debug]

Commands:
  -stdm      Standard mod: create the directory tree only
  -stdmc     Standard mod complex: create the directory tree and table files
  -help      Show this help
  -version   Show version information

Arguments:
  <path>     Root directory of the mod. Created if it does not exist.
  -tbl       Create monolithic <table>.tbl files plus the static base tables
  -tbm       Create modular <prefix><suffix>.tbm fragments; tables without a
             modular form are created as <table>.tbl
  <prefix>   Short mod identifier prepended to every .tbm file (required with -tbm)
  -debug     Report every path and append a log to log.txt in the current
             directory (override with FSMOD_LOG_FILE)

Examples:
  %[1]s -stdm ./mymod
  %[1]s -stdmc ./mymod -tbl
  %[1]s -stdmc ./mymod -tbm MYMOD -debug
`, name)
}

// ShortUsage returns the one-line synopsis printed after usage errors.
func ShortUsage(name string) string {
	return fmt.Sprintf("Usage: %s <-stdm|-stdmc|-help> <path> [-tbl | -tbm <prefix>] [-debug]", name)
}
