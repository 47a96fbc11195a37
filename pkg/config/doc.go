// Package config loads the linker configuration.
//
// A configuration names one source directory, the target directories that
// mirror it, the basenames to exclude and the ordered link maps routing
// source entries into targets. Files are JSON by default; .toml, .yaml and
// .yml files are parsed by extension. Values are layered with koanf:
// defaults, then the file, then LINKER_SOURCE, LINKER_TARGETS and
// LINKER_EXCLUDES from the environment (lists comma separated).
//
// Loading normalizes the configuration (excludes are lower-cased, link maps
// with an empty regex or target are dropped) and validates it. Every error
// is fatal and is reported before any filesystem mutation happens.
package config
