// Package strategy provides built-in pairing strategy implementations.
//
// Pairing strategies determine how mentor/mentee pairs are formed from the
// eligible roster. The package includes two built-in strategies:
//
//   - Shuffle: Bounded randomized search over full shuffles (default)
//   - Greedy: Most-constrained-first incremental assignment
//
// # Strategy Selection Guide
//
// Shuffle:
//   - Examines up to MaxAttempts shuffled candidate sets per round
//   - Keeps the candidate set with the lowest total repetition penalty
//   - Seeded randomness: identical seed and input reproduce identical output
//   - When no valid candidate exists at the current roster size, the most
//     constrained member is skipped and the search retries on the smaller set
//
// Greedy:
//   - Fully deterministic, ignores the random source
//   - Repeatedly assigns the member with the fewest remaining valid partners,
//     pairing it with its lowest-penalty available partner
//   - Members with no valid partner left are skipped
//
// Both strategies guarantee that no forbidden pair appears in the output, no
// member is assigned twice, and the search terminates even when no valid
// pairing exists.
//
// Custom strategies can be implemented by satisfying the
// types.PairingStrategy interface.
package strategy
