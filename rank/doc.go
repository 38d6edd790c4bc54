/*
Package rank implements the bounded top-K leaderboard at the heart of
edgerank: a single mutual-exclusion domain guarding the K lowest-latency
addresses seen so far, plus the dirty flag driving incremental terminal
repaints.

The [Board] is the single source of truth for what gets rendered and finally
persisted. Probe completions offer candidates via [Board.Offer]; asynchronous
geo lookups land via [Board.Place], which silently drops placements for
entries that got evicted in the meantime, so a stale lookup can never
resurrect an evicted address.
*/
package rank
