// Package model defines the data structures shared by the rewrite workflow.
package model

// Path represents a file system path.
type Path string

// Line is a single `\n`-delimited unit of a file. Carriage returns stay
// attached to the content.
type Line string

// File represents a source file on disk.
type File struct {
	// Path as given on the command line.
	Path Path
	// FullPath is the absolute form of Path.
	FullPath Path
	// Hash is the SHA-256 fingerprint of the contents before rewriting.
	Hash string
}
