// Package batch solves many independent rent-division instances concurrently.
//
// Each instance is one task on an errgroup bounded by WithWorkers. Instances
// share no mutable state; the core solver stays single-threaded and pure.
// A failing instance records its error in Outcome.Err and does not cancel the
// others unless WithFailFast is set. Outcomes keep the input order.
package batch
