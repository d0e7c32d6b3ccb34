// Package config provides configuration loading and defaults for ridersearch.
package config

import "github.com/blackwell-systems/ridersearch/internal/rider"

// DefaultConfigDir is the default location for ridersearch configuration.
const DefaultConfigDir = "~/.config/ridersearch"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment variable overrides, e.g. RIDERSEARCH_HOME.
const EnvPrefix = "RIDERSEARCH"

// DefaultPattern matches Rider configuration directories under home.
const DefaultPattern = rider.DefaultPattern

// DefaultSessionFile is the session history path inside a Rider directory.
var DefaultSessionFile = rider.DefaultSessionFile

// DefaultIDPrefix namespaces solution IDs.
const DefaultIDPrefix = rider.DefaultIDPrefix

// DefaultWorkers bounds concurrent marker file reads.
const DefaultWorkers = rider.DefaultWorkers

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
