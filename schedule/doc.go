// Package schedule handles the pairing document on disk and the period
// label calendar.
//
// The document is a JSON file with three fields: the roster (`members`),
// forbidden pairs (`excluded`), and the chronological history (`months`).
// Load reads and validates it, Append adds a generated period without
// mutating the original, and Write emits the canonical pretty-printed form.
//
// Period labels follow the "YYYY年M月" convention. NextLabel computes the
// label of the period to append under one of two policies: the calendar
// successor of the last recorded label (default), or the wall-clock date.
package schedule
