package langstat

// Stats holds the per-file line counts produced by the syntax counter,
// plus the file's display name. Grounded on
// original_source/src/stats.rs's Stats struct.
type Stats struct {
	Name     string
	Blanks   int
	Code     int
	Comments int
	Lines    int
}

// NewStats creates an empty Stats entry for name.
func NewStats(name string) Stats {
	return Stats{Name: name}
}

// Summarize rolls Blanks/Code/Comments up into Lines. Called once the
// counter has finished a file.
func (s *Stats) Summarize() {
	s.Lines = s.Blanks + s.Code + s.Comments
}

// add accumulates other's counts into s, leaving Name untouched.
func (s *Stats) add(other Stats) {
	s.Blanks += other.Blanks
	s.Code += other.Code
	s.Comments += other.Comments
	s.Lines += other.Lines
}
