// Package output provides the destinations translations are written to:
// plain text lines on a writer and a SQLite results database.
package output
