// Package config loads and validates the projval configuration file.
//
// Configuration is TOML with three sections: [project] for the root
// directory, [checks] for the expected-layout tables and strictness
// toggle, and [logging] for diagnostic output. A missing file is not an
// error; defaults reproduce the historical hardwired tables exactly.
package config
