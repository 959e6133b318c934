// Package setops provides lazy set algebra over ascending key/value
// sequences.
//
// Each adaptor takes two iter.Seq2 sequences that must already be in
// ascending key order under the supplied comparison, and returns a sequence
// that is itself ascending. Nothing is materialized: elements are pulled
// from the inputs one at a time as the consumer advances, and abandoning
// the output early stops pulling. Every adaptor makes O(|A|+|B|) key
// comparisons in a single pass.
//
// The returned sequences are re-entrant: ranging over one re-runs the merge
// from the start against the inputs as they are at that moment. Inputs must
// not change while an iteration over a view built from them is in progress.
package setops
