// Package api defines the abstract pooling contracts of the library:
// fixed-shape block handles, the BlockPool interface, pool statistics,
// and the shared error taxonomy.
//
// Implementations live in the pool package; consumers should depend on
// these interfaces and receive a concrete pool by injection, never
// through a process-wide global.
package api
