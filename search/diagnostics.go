package search

import "fmt"

// DepthReport is one iterative-deepening iteration's summary, suitable for
// printing by a driver or collecting in tests.
type DepthReport struct {
	Depth    int
	Score    Score
	Elapsed  float64 // seconds
	Nodes    int64
	BestMove string
}

// FormatProgress renders a report in the classic per-depth diagnostic line
// format: depth, score in pawns, elapsed seconds, node count and knps
// throughput.
func FormatProgress(r DepthReport) string {
	var knps float64
	if r.Elapsed > 0 {
		knps = float64(r.Nodes) / 1000 / r.Elapsed
	}
	return fmt.Sprintf(
		"Depth: %d, Score: %.2f, Time: %.3fs, Nodes Evaluated = %d, knps: %.1f",
		r.Depth, float64(r.Score)/100.0, r.Elapsed, r.Nodes, knps,
	)
}

func (r DepthReport) String() string {
	return FormatProgress(r)
}
