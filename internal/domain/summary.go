package domain

// Summary aggregates the outcome of one pipeline run.
type Summary struct {
	Networks int   // accepted networks, coerced included
	Coerced  int   // subset of Networks that needed host-bit masking
	Rejected int   // non-empty lines dropped
	Blank    int   // blank lines skipped silently
	Hosts    int64 // host addresses written (or projected, for check)
}
