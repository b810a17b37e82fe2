package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault_Directories(t *testing.T) {
	c := mustDefault(t)

	dirs := c.Directories()
	if len(dirs) != 29 {
		t.Fatalf("got %d directories, want 29", len(dirs))
	}
	if dirs[0].Name != "cache" {
		t.Errorf("first directory = %q, want cache", dirs[0].Name)
	}

	voice := dirs[len(dirs)-1]
	if voice.Name != "voice" {
		t.Fatalf("last directory = %q, want voice", voice.Name)
	}
	wantSubs := []string{"briefing", "command_briefings", "debriefing", "personas", "special", "training"}
	if strings.Join(voice.Subdirectories, ",") != strings.Join(wantSubs, ",") {
		t.Errorf("voice subdirectories = %v, want %v", voice.Subdirectories, wantSubs)
	}

	holders := 0
	for _, d := range dirs {
		if d.HoldsTables {
			holders++
			if d.Name != TablesDir {
				t.Errorf("directory %q holds tables, want %q", d.Name, TablesDir)
			}
		}
		if d.Name != "voice" && len(d.Subdirectories) > 0 {
			t.Errorf("directory %q has unexpected subdirectories %v", d.Name, d.Subdirectories)
		}
	}
	if holders != 1 {
		t.Errorf("got %d table-holding directories, want 1", holders)
	}
}

func TestDefault_ModDirectoriesExcludeTables(t *testing.T) {
	c := mustDefault(t)

	dirs := c.ModDirectories()
	if len(dirs) != 28 {
		t.Fatalf("got %d mod directories, want 28", len(dirs))
	}
	for _, d := range dirs {
		if d.Name == TablesDir {
			t.Errorf("ModDirectories() should not include %q", TablesDir)
		}
	}
}

func TestDefault_Tables(t *testing.T) {
	c := mustDefault(t)

	tables := c.Tables()
	if len(tables) != 39 {
		t.Fatalf("got %d tables, want 39", len(tables))
	}

	modular := 0
	for _, tbl := range tables {
		if tbl.IsModular {
			modular++
			if !strings.HasPrefix(tbl.ModularSuffix, "-") {
				t.Errorf("table %q suffix %q should start with '-'", tbl.BaseName, tbl.ModularSuffix)
			}
		} else if tbl.ModularSuffix != "" {
			t.Errorf("non-modular table %q has suffix %q", tbl.BaseName, tbl.ModularSuffix)
		}
	}
	if modular != 20 {
		t.Errorf("got %d modular tables, want 20", modular)
	}
}

func TestTable_Lookup(t *testing.T) {
	c := mustDefault(t)

	tests := []struct {
		name       string
		wantFound  bool
		wantModule bool
		wantSuffix string
	}{
		{"ai", true, true, "-aic"},
		{"weapons", true, true, "-wep"},
		{"particle_effects", true, true, "-part"},
		{"armor", true, false, ""},
		{"autopilot", true, false, ""},
		{"nonexistent", false, false, ""},
	}

	for _, tt := range tests {
		got, ok := c.Table(tt.name)
		if ok != tt.wantFound {
			t.Errorf("Table(%q) found = %v, want %v", tt.name, ok, tt.wantFound)
			continue
		}
		if got.IsModular != tt.wantModule || got.ModularSuffix != tt.wantSuffix {
			t.Errorf("Table(%q) = %+v, want modular=%v suffix=%q", tt.name, got, tt.wantModule, tt.wantSuffix)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := mustDefault(t)

	dirs := c.Directories()
	dirs[0].Name = "mutated"
	dirs[len(dirs)-1].Subdirectories[0] = "mutated"

	tables := c.Tables()
	tables[0].BaseName = "mutated"

	again := c.Directories()
	if again[0].Name != "cache" {
		t.Error("mutating Directories() result changed the catalog")
	}
	if again[len(again)-1].Subdirectories[0] != "briefing" {
		t.Error("mutating subdirectories changed the catalog")
	}
	if c.Tables()[0].BaseName != "ai" {
		t.Error("mutating Tables() result changed the catalog")
	}
}

func TestDefault_FormatVersion(t *testing.T) {
	c := mustDefault(t)
	if got := c.FormatVersion(); got != "1.0.0" {
		t.Errorf("FormatVersion() = %q, want 1.0.0", got)
	}
}

func TestStaticTables(t *testing.T) {
	want := []string{
		"Ai_profiles.tbl", "Autopilot.tbl", "Colors.tbl", "Iff_defs.tbl", "Objecttypes.tbl",
		"Species_defs.tbl", "Armor.tbl", "Controlconfigdefaults.tbl", "Scripting.tbl",
	}
	got := StaticTables()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("StaticTables() = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if StaticTables()[0] != "Ai_profiles.tbl" {
		t.Error("mutating StaticTables() result changed the fixed list")
	}
}

func TestParse_Minimal(t *testing.T) {
	c, err := Parse([]byte(`
format_version: 1.2.0
directories:
  - name: maps
tables:
  - { name: ships, modular: true, modular_suffix: "-shp" }
  - { name: armor }
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(c.Directories()) != 1 || len(c.Tables()) != 2 {
		t.Errorf("got %d dirs, %d tables; want 1, 2", len(c.Directories()), len(c.Tables()))
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name: "modular without suffix",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps }]
tables: [{ name: ships, modular: true }]
`,
			wantMsg: "modular_suffix",
		},
		{
			name: "suffix without modular",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps }]
tables: [{ name: armor, modular_suffix: "-amr" }]
`,
			wantMsg: "/tables/0",
		},
		{
			name: "directory name with separator",
			yaml: `
format_version: 1.0.0
directories: [{ name: "maps/extra" }]
tables: []
`,
			wantMsg: "/directories/0/name",
		},
		{
			name: "dot-dot subdirectory",
			yaml: `
format_version: 1.0.0
directories: [{ name: voice, subdirectories: [".."] }]
tables: []
`,
			wantMsg: "/directories/0/subdirectories/0",
		},
		{
			name: "empty table name",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps }]
tables: [{ name: "" }]
`,
			wantMsg: "/tables/0/name",
		},
		{
			name: "unknown field",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps, hidden: true }]
tables: []
`,
			wantMsg: "hidden",
		},
		{
			name: "duplicate table",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps }]
tables: [{ name: armor }, { name: armor }]
`,
			wantMsg: `duplicate table "armor"`,
		},
		{
			name: "duplicate directory",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps }, { name: maps }]
tables: []
`,
			wantMsg: `duplicate directory "maps"`,
		},
		{
			name: "shared suffix",
			yaml: `
format_version: 1.0.0
directories: [{ name: maps }]
tables:
  - { name: ships, modular: true, modular_suffix: "-shp" }
  - { name: hulls, modular: true, modular_suffix: "-shp" }
`,
			wantMsg: "share modular suffix",
		},
		{
			name: "wrong table holder",
			yaml: `
format_version: 1.0.0
directories: [{ name: data, holds_tables: true }]
tables: []
`,
			wantMsg: "holds tables",
		},
		{
			name: "unsupported format version",
			yaml: `
format_version: 2.0.0
directories: [{ name: maps }]
tables: []
`,
			wantMsg: "not supported",
		},
		{
			name: "malformed format version",
			yaml: `
format_version: banana
directories: [{ name: maps }]
tables: []
`,
			wantMsg: "format_version",
		},
		{
			name:    "not YAML",
			yaml:    "directories: [",
			wantMsg: "parsing YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	return c
}
