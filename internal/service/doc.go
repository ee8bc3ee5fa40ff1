// Package service implements the registry, the single owner of the user
// and activity collections. Every operation runs to completion inside
// one critical section, including the write-through persistence call, so
// callers always observe a store identical to the in-memory state.
package service
