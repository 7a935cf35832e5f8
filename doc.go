// Package ecotrack keeps the books of a player's in-game economy: the
// profile balance, a transaction history, shop listings, intelligence on
// competitors and free-form notes.
//
// The whole state lives in a [Store] and is persisted as a single snapshot:
// every mutation validates its input, applies the change in memory and
// rewrites the snapshot in full. Derived values (net worth, profit, margins,
// balance history, risk rating) are computed on demand from a [State] and are
// never stored.
//
// The package is local-first. Snapshots are written to a [Storage], which the
// storage package implements on top of plain files, SQLite or memory, and
// legacy snapshots written by earlier versions of the tool are migrated on
// first load.
package ecotrack
