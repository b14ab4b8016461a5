package listview

// Clipboard receives the label of every node marked through the list.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	WriteText(s string) error
}
