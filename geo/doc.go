/*
Package geo asynchronously enriches leaderboard addresses with geographic
metadata.

An [Enricher] runs location lookups on a small bounded worker pool,
independent from the probing pool, and streams completed lookups as
[Placement] messages:

	          +---+
	address-->| E +-->ch Placement
	          +---+

Scheduling a lookup is fire-and-forget so that probe completion handling is
never blocked by slow geolocation HTTP round trips. Lookups cannot fail from
the pipeline's point of view: the [IPInfo] lookup maps every error onto the
[Unlocatable] sentinel string.

# Acknowledgements

Under its hood, [Enricher] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package geo
