// Package store keeps a history of translation runs in a SQLite database.
//
// Each Run records which score was translated, into which encoding, how large
// the braille score came out and how many warnings the translator raised.
// The individual warnings and errors are kept as Diagnostic rows:
//
//	db, err := store.Open("msr2braille.sqlite3")
//	defer db.Close()
//
//	id, err := db.RecordRun(run, diagnostics)
//	runs, err := db.ListRuns(20)
//
// The database uses the pure Go SQLite driver, so no cgo toolchain is needed.
package store
