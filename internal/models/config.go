package models

// DefaultDBDir is where pacman keeps its sync databases
const DefaultDBDir = "/var/lib/pacman/sync"

// Config contains the settings shared by every command
type Config struct {
	// DBPath forces a single database file; when empty DBDir is scanned
	DBPath string
	// DBDir is the directory holding *.db sync databases
	DBDir string

	// Output
	Format  string   // text, json or yaml
	Keys    []string // restrict package output to these fields
	Verbose bool
}
