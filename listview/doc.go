// Package listview renders a view.State as a Bubble Tea tree list.
//
// The Model owns no tree data. It reads the host tree through view.State,
// turns key presses into view actions through a KeyMap and keeps a small
// input mode for the actions that need text (add, rename and filter).
//
// Rendering draws one row per visible node with optional guide lines and
// right-hand columns sized by width policy. Keymaps can be selected by
// profile or loaded from YAML with LoadKeyMap.
package listview
