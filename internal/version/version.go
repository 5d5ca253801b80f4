// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - YAML boundary overrides, batch classification with worker pool, JSON export
// 0.2.0 - Sky cursor TUI, reference fallback for pole and vertex degeneracies
// 0.1.0 - Initial release: spherical polygons, constellation lookup, segment checks
