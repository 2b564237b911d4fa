package domain

// Config represents the petspeak configuration loaded from petspeak.yaml.
type Config struct {
	Roster RosterConfig
	Assets AssetsConfig
	Logs   LogsConfig
}

type RosterConfig struct {
	// Path to an extra roster file, relative to the workspace root (optional).
	Path            string
	IncludeDefaults bool
}

type AssetsConfig struct {
	Default string
	// Species maps a lower-cased species name to its display glyph.
	Species map[string]string
}

type LogsConfig struct {
	Dir string
}

// DefaultConfig provides sane defaults if petspeak.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Roster: RosterConfig{IncludeDefaults: true},
		Assets: AssetsConfig{Species: map[string]string{}},
		Logs:   LogsConfig{Dir: ".petspeak/logs"},
	}
}

// RosterSpec describes how the starting roster is assembled.
type RosterSpec struct {
	IncludeDefaults bool
	Path            string // Optional: extra roster file
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
