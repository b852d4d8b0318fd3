// Package pebblestore provides a thin wrapper around Pebble with an explicit
// fsync policy and the point operations the translation cache needs.
//
// Usage:
//
//	db, err := pebblestore.Open(pebblestore.Options{
//	    DataDir: "./cache",
//	    Fsync:   pebblestore.FsyncModeNever,
//	})
//	if err != nil { /* handle */ }
//	defer db.Close()
//
//	_ = db.Set([]byte("k"), []byte("v"))
//	v, _ := db.Get([]byte("k"))
package pebblestore
