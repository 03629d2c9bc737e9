// Package domain holds the arena engine entities and pure game rules.
//
// A Run is one player's bounded career: a budget of turns and gold, a single
// recruited gladiator, a wound state, and a win/loss record. Candidates are
// ephemeral recruitment offers scoped to one player. Challenges are posted,
// time-boxed PvP offers that fight a snapshot of the posting run frozen at
// post time.
//
// Everything here is deterministic given its inputs: random draws and clock
// reads happen in the service layer and are passed in as plain values.
package domain
