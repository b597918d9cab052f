// Package terminal renders a dragon.Scene in a text terminal using tcell.
//
// Every character cell holds two vertically stacked pixels drawn with the
// upper half block glyph, its foreground coloring the top pixel and its
// background the bottom one. Half-block pixels are roughly square, so the
// curve keeps its proportions without any extra correction.
package terminal
