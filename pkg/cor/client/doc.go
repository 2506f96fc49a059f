// Package client feeds a sequence of requests through a chain and reports
// what happened to each of them.
//
// Client.Serve runs every request from the given node inside a recover
// boundary and returns one Outcome per request. Report prints outcomes the
// way the demo driver shows them.
package client
