// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, allowing the registry's business rules to
// remain independent of how the document is actually kept on disk.
package store
