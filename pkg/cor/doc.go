// Package cor defines the chain-of-responsibility primitives: the Handler
// capability every link satisfies and Base, the delegation unit concrete
// handlers embed to get successor storage and forwarding for free.
//
// Key pieces:
// - Handler: SetNext + Handle
// - Base: stores one successor and forwards to it, or returns Unhandled
// - Walk/Names/Describe: inspect a chain starting at any node
// - IsNil: nil-interface and typed-nil-pointer check
//
// A concrete handler embeds Base, checks its own rule in Handle and otherwise
// calls Base.Handle. See package animals for examples and package chain for
// assembly helpers.
package cor
