// Package license implements best-effort detection of the license(s)
// covering a scanned root, attached to a run's report but never
// affecting its counts.
package license

import (
	"math"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
)

// Match is one detected license above the confidence floor.
type Match struct {
	License    string  `json:"license" yaml:"license"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	File       string  `json:"file" yaml:"file"`
}

// confidenceFloor is the cutoff below which a detected license is
// considered too uncertain to report.
const confidenceFloor = 0.9

// Detect scans dir for LICENSE-like files and returns every match
// above confidenceFloor. A detection failure (unreadable directory,
// no license detector dependencies installed) yields an empty result,
// never an error — license detection is informational only.
func Detect(dir string) []Match {
	fs, err := filer.FromDirectory(dir)
	if err != nil {
		return nil
	}

	matches, err := licensedb.Detect(fs)
	if err != nil {
		return nil
	}

	var out []Match
	for id, m := range matches {
		if m.Confidence <= confidenceFloor {
			continue
		}
		out = append(out, Match{
			License:    id,
			Confidence: math.Round(float64(m.Confidence)*100) / 100,
			File:       m.File,
		})
	}
	return out
}
