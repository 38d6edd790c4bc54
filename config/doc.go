/*
Package config collects the scan configuration surface: leaderboard size,
probing policy, pool sizes, and input/output locations. Values come from the
defaults, optionally overlaid by a YAML file, optionally overlaid by command
line flags.
*/
package config
