// Package view implements the pure view-state engine of the tree list.
//
// A State holds the Expansion set, the active Filter, the Mark Set, the
// selection and the scroll window over a host-owned tree.Model. The Visible
// List is a derived cache: every mutation of the tree, the expansion set or
// the filter recomputes it with Flatten, then re-anchors selection and scroll
// before the call returns.
//
// Depths are 0-based and measured from the traversal root. Selection moves
// saturate at the list bounds. Structural edits validate fully before they
// touch the tree, so a failed edit leaves every piece of state unchanged.
//
// State is not safe for concurrent use.
package view
