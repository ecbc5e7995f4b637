package ir

// Truth reports the truthiness of a value node as the evaluation stack
// sees it. Non-value nodes are false.
func Truth(node *Node) bool {
	if !node.Kind.IsValue() {
		return false
	}
	switch node.Kind {
	case IntKind:
		return node.Int != 0
	case FloatKind:
		return node.Float != 0.0
	default:
		return node.String != ""
	}
}
