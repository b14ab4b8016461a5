package tree

import "github.com/xlab/treeprint"

// Dump renders the attached hierarchy under the root as an ASCII tree.
//
// Labels fall back to ids when labels is nil. Revisited ids are printed once
// with a "(cycle)" suffix and not descended into.
func Dump(m Model, labels Labeler) string {
	root, ok := m.Root()
	if !ok {
		return ""
	}
	text := func(id NodeID) string {
		if labels == nil {
			return string(id)
		}
		return labels.Label(id)
	}

	seen := map[NodeID]bool{root: true}
	out := treeprint.NewWithRoot(text(root))
	var walk func(branch treeprint.Tree, id NodeID)
	walk = func(branch treeprint.Tree, id NodeID) {
		for _, child := range m.Children(id) {
			if seen[child] {
				branch.AddNode(text(child) + " (cycle)")
				continue
			}
			seen[child] = true
			if len(m.Children(child)) == 0 {
				branch.AddNode(text(child))
				continue
			}
			walk(branch.AddBranch(text(child)), child)
		}
	}
	walk(out, root)
	return out.String()
}
