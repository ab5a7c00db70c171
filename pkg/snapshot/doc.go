// Package snapshot implements the persistence and import/export boundary
// for email documents. Imports accept either the snapshot wrapper or a bare
// tree, and are rejected wholesale when the structural validator reports
// any violation.
package snapshot
