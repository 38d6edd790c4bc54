/*
Package types defines edgerank's information model, which is rather simple and
revolves around probe [Outcome] values streamed out of the probing pool and
leaderboard [Entry] values kept by the ranking board.

Outcomes are created by probe strategies, consumed once by the scan loop, and
then discarded. Entries are owned by the ranking board; after insertion only
their [Location] field ever changes, and only under the board's lock, when an
asynchronous geo lookup for the entry's address completes.
*/
package types
