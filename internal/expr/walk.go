package expr

// Visit calls fn once for every distinct node reachable from n, children
// before parents. Structural sharing is respected: a subtree referenced by
// several parents is visited a single time.
func Visit(n Node, fn func(Node)) {
	seen := make(map[Fingerprint]struct{})
	var walk func(Node)
	walk = func(cur Node) {
		if _, ok := seen[cur.Fingerprint()]; ok {
			return
		}
		seen[cur.Fingerprint()] = struct{}{}
		if call, ok := cur.(*OperatorCall); ok {
			for _, arg := range call.args {
				walk(arg)
			}
		}
		fn(cur)
	}
	walk(n)
}

// CountNodes returns the number of distinct nodes in the DAG rooted at n.
func CountNodes(n Node) int {
	count := 0
	Visit(n, func(Node) { count++ })
	return count
}
