/*
Package probe implements edgerank's concurrent latency probing engine.

An [Engine] applies a [Strategy] to every target address on a bounded worker
pool and streams the per-address outcomes to a channel returned when creating
the engine:

	         +---+
	[]string-->| E +-->ch Outcome
	         +---+

Two capability-equivalent strategies exist behind the same contract: [ICMP]
sends echo requests and reads the round-trip summary, [TCP] times handshakes
against a fixed service port. Which one to use is a configuration choice, not
a code fork; the engine is strategy-agnostic.

Both strategies share the all-or-nothing attempt policy: a probe only counts
as reachable when every single attempt succeeded, and then reports the mean
round-trip time over all attempts.

# Acknowledgements

Under its hood, [Engine] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package probe
