// Package ledger keeps a tamper-evident log of the categories committed
// during a game.
//
// # Core Components
//
// Ledger: An append-only list of entries with SHA-256 hash chaining.
//
// Entry: One committed category, with the dice it was scored on, the points
// awarded and the grand total afterwards.
//
// # Properties
//
//   - Append-only: entries are never modified once recorded
//   - Verifiable: Verify recomputes every hash and link in the chain
//   - In memory: the log lives as long as the process
//
// # Usage
//
// Create a ledger for a session id, register Append as the game's commit
// handler, and call Verify when the game ends.
package ledger
