// Package config loads bytescan's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bytescan/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - max_bytes: 4096 (0 disables cutting)
//   - binary_threshold: 33 (percent)
//   - tail_lines: 400 (0 reads whole files)
//   - width: 0 (no clamping)
//   - hex_row_bytes: 16 (bytes per row in hex mode)
//   - log_level: info
//   - log_format: text
//
// # TOML Format
//
//	max_bytes = 4096
//	binary_threshold = 33
//	tail_lines = 400
//	width = 120
//	hex_row_bytes = 8
//	log_level = "debug"
//	log_format = "json"
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and a
// binary_threshold outside 0-100 are returned as wrapped errors.
package config
