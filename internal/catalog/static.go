package catalog

import "slices"

// staticTables are the base tables every standalone mod ships, spelled the
// way the engine's own data files are.
var staticTables = []string{
	"Ai_profiles.tbl",
	"Autopilot.tbl",
	"Colors.tbl",
	"Iff_defs.tbl",
	"Objecttypes.tbl",
	"Species_defs.tbl",
	"Armor.tbl",
	"Controlconfigdefaults.tbl",
	"Scripting.tbl",
}

// StaticTables returns the fixed list of static table filenames. It does not
// depend on the catalog's table entries.
func StaticTables() []string {
	return slices.Clone(staticTables)
}
