package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Current          int
	Processed        int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceDelta returns the aggregate byte difference between outputs and inputs.
// Negative means outputs are smaller; positive means they grew.
func (s *RunStats) SpaceDelta() int64 {
	return s.TotalOutputBytes - s.TotalInputBytes
}
