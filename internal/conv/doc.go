// Package conv provides checked integer conversions for values read from, or
// written to, snapshot headers.
//
// Counts decoded from untrusted bytes go through these helpers; conversions
// that are safe by construction use plain casts.
package conv
