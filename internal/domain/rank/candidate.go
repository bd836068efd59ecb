// Package rank holds the scoring value objects shared by the search and
// recommendation pipelines: scored candidates, search mode classification,
// weight profiles and final-order assembly.
package rank

// Candidate carries one item through the scoring pipeline. Base is the
// weighted vector similarity, Bonus the accumulated symbolic adjustment
// (bonuses minus penalties) and Final their sum.
type Candidate struct {
	ID    string
	Base  float64
	Bonus float64
	Final float64
}
