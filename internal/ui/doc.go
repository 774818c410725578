// Package ui implements the interactive viewer built on Bubble Tea.
//
// The viewer shows one scanned source at a time in a scrollable viewport,
// between a header (source, position, hex mode, failure state) and a footer
// (byte totals, category legend, key help). It reads a fresh snapshot from
// the state.Store every second at most, so a background poller can keep the
// store current while the viewer is open.
//
// # Key Bindings
//
//	tab / shift+tab   next / previous source
//	j k g G           scroll, top, bottom
//	pgup pgdown       page up / down
//	x                 toggle hex dump
//	t                 cycle theme
//	?                 full help
//	q / ctrl+c        quit
//
// Theme and hex mode are written to prefs.toml whenever they change.
//
// A viewport already scrolled to the bottom follows new lines as they
// arrive; switching source or mode jumps back to the top.
package ui
