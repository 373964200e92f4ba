// Package server provides the HTTP surface for the CrunchBoard demo page.
//
// This package is internal to CrunchBoard and handles all HTTP concerns:
//
//   - GET "/": Serves the fixed demonstration page with no results
//   - POST "/": Runs the workload, then serves the page with a results fragment
//   - GET "/api/runs": JSON snapshot of recent runs and duration stats
//
// Requests to other paths receive 404; other methods on "/" receive 405.
// The server supports graceful shutdown via context cancellation, with a
// 5-second timeout for in-flight requests.
//
// Users of the crunchboard library should not need to interact with this
// package directly. The server is started automatically by
// [crunchboard.CrunchBoard.Start].
package server
