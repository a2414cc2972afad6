// Package pipeline bridges asynchronous market data fetches into the
// synchronous pricing loop.
//
// The Reactive Parameter Pipeline:
//   - Issues fetches as fire-and-forget goroutines that never block
//     the caller
//   - Delivers results through an ordered, non-blocking inbox with
//     many producers and a single consumer
//   - Drains all queued updates on each tick, then recomputes the
//     pricing result exactly once
//   - Never cancels or retries: a stale fetch that completes late is
//     applied anyway (last-write-wins)
package pipeline
