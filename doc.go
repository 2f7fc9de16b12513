// Package peer1on1 generates monthly mentor/mentee pairings for a fixed
// roster, avoiding forbidden pairs and minimizing repetition of past
// pairings.
//
// The engine consumes a schedule document (roster, exclusion rules, and the
// chronological history of past periods) and produces exactly one new period:
// a set of mentor/mentee assignments plus the list of members left unpaired.
// When a chosen pair repeats the orientation it had the last time it was
// assigned, the mentor and mentee roles are flipped so the same person does
// not mentor the same partner twice in a row.
//
// # Quick Start
//
//	import (
//	    "github.com/Seitaro-Yuki/peer-1on1"
//	    "github.com/Seitaro-Yuki/peer-1on1/schedule"
//	)
//
//	sched, err := schedule.Load("pairs.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine, err := peer1on1.New(peer1on1.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	period, err := engine.Generate(ctx, sched)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schedule.Write(os.Stdout, schedule.Append(sched, period))
//
// # Key Properties
//
//   - Exclusion safety: forbidden pairs never appear, in either orientation
//   - Repetition penalty: pairs from the most recent period are avoided
//     first, frequent all-time pairs second
//   - Orientation flip: a pair repeating its previous orientation is reversed
//   - Determinism: a fixed seed reproduces identical output; by default the
//     seed is derived from the input document itself
//   - Graceful degradation: when no valid pairing exists, members are
//     skipped instead of failing
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import "github.com/Seitaro-Yuki/peer-1on1/strategy"
//
//	engine, err := peer1on1.New(cfg,
//	    peer1on1.WithStrategy(strategy.NewGreedy()),
//	    peer1on1.WithSeed(42),
//	    peer1on1.WithLogger(myLogger),
//	)
package peer1on1
