/*
Package progress tracks how far a scan has come and estimates how long it
still has to go. The estimate smooths the per-completion intervals with an
exponentially-weighted moving average (alpha 0.95), so a burst of fast
failures doesn't make the remaining-time projection jump around.
*/
package progress
