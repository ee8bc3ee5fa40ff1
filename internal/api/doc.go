// Package api provides HTTP handlers for the API.
//
// This is the presentation layer: it owns no state, performs the input
// validation the registry deliberately trusts it with (non-empty names,
// at least one category and day, well-formed dates), and renders the
// registry's results and outcome messages.
package api
