// Package chain assembles cor.Handler values into linear chains.
//
// It wraps the SetNext idiom behind a couple of helpers so that a chain can
// be built from a list or grown one link at a time without keeping track of
// the current tail by hand.
//
// Key operations:
// - Link: connect handlers in order and return the head
// - Start: begin a fluent Chain from an existing head
// - Then: append a handler after the current tail
// - Head/Tail: the first and last links
// - Handle: run a request from the head
package chain
