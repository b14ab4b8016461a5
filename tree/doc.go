// Package tree defines the host-side capabilities the tree list view consumes.
//
// A host owns its hierarchy and exposes it through Model (read) and Editor
// (mutation primitives). Nodes are referenced only by NodeID, which must stay
// stable across frames and across full rebuilds of the host data.
//
// Memory is a small in-memory implementation used by tests, examples and the
// demo program.
package tree
