// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Rise/transit/set almanac, scheduled summaries, config file
// 0.2.0 - Planet and Moon models, asterism lines, cursor object lookup
// 0.1.0 - Initial release: star catalogue, stereographic sky view, headless summary
