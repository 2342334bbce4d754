// Package memory provides mutex-guarded, process-local implementations of the
// store interfaces. They back the "memory" database driver and keep service
// and handler tests free of external dependencies.
package memory
