// Package config loads, normalizes, and validates the mcarve configuration.
//
// Configuration lives in a TOML file (default ~/.config/mcarve/config.toml).
// Loading always starts from repository defaults, overlays the file when it
// exists, expands ~ in every path field, and validates the result. Run
// parameters that belong to a single project (CRS, offsets, batch size) are
// only defaults here; once a project is created they are frozen into its
// checkpoint document and the checkpoint wins on resume.
package config
