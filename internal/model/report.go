package model

import "time"

// Report summarises one run. It is what the report store persists.
type Report struct {
	Version   int
	Generated time.Time
	Mode      MatchMode
	DryRun    bool
	Files     []FileResult
}

// Totals returns the number of files touched and lines rewritten.
func (r Report) Totals() (files int, lines int) {
	for _, file := range r.Files {
		if file.Changed() {
			files++
		}

		lines += len(file.Rewrites)
	}

	return files, lines
}
