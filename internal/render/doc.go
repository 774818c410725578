// Package render formats classified bytes for the terminal.
//
// Text that is mostly UTF-8 is printed inline: control characters appear as
// \xNN or \u{NNNN} escapes in the theme's warning colour and invalid bytes as
// \xNN escapes in the danger colour. Input whose binary share exceeds the
// configured threshold is printed as a hex dump instead, with each byte
// coloured by its category. Long inputs are cut on a character boundary and
// rows are clamped to the terminal width.
package render
