// Package clean contains pure stages of the cleaning pipeline:
// normalization, sanitization, exact-duplicate removal, identity
// resolution and date coercion.
//
// Every stage takes a snapshot of the working set and returns a new
// one. Input records are never modified.
package clean
