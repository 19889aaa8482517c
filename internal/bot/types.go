package bot

// Bot is the capability shared by every bot in the command center.
type Bot interface {
	Name() string
	Version() string
	Introduce() string
}

// Report is the result of a successful live weather fetch.
type Report struct {
	Region                string
	TemperatureFahrenheit float64
}

// Advice is the result of a successful travel tip lookup.
type Advice struct {
	City string // canonical casing from the destination table
	Tip  string
}
