// Package payment contains the per-order payment Record state machine.
//
// A Record fixes the amount due at creation and then moves money in three
// steps: authorize (hold), capture (take), refund (return). Cash captures
// without authorization; card and online payments must authorize first.
// Every successful operation appends an audit line to the record's history;
// failed operations change nothing.
package payment
