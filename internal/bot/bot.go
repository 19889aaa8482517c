package bot

import "fmt"

// Identity is the name and version every bot carries.
type Identity struct {
	name    string
	version string
}

// NewIdentity creates an Identity.
func NewIdentity(name, version string) Identity {
	return Identity{name: name, version: version}
}

func (i Identity) Name() string {
	return i.name
}

func (i Identity) Version() string {
	return i.version
}

// Introduce is the default introduction used by bots that do not override it.
func (i Identity) Introduce() string {
	return fmt.Sprintf("Hello! I am %s, running on version %s.", i.name, i.version)
}
