/*
Package report persists a finished scan's leaderboard as a fixed-width
plain-text table, the same layout the live terminal view uses, minus the
colors.
*/
package report
