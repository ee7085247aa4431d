// Package validator analyses state graphs given as an index adjacency:
// nodes are 0..n-1 and next(i) lists the direct successors of node i.
package validator

// Reachable returns reach[i] == true for every node reachable from start
// (start included). A start outside 0..n-1 reaches nothing.
func Reachable(n, start int, next func(i int) []int) []bool {
	visited := make([]bool, n)
	if start < 0 || start >= n {
		return visited
	}

	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range next(current) {
			if target < 0 || target >= n {
				continue
			}
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}

// Unreachable returns, in ascending order, the nodes that cannot be reached from start.
func Unreachable(n, start int, next func(i int) []int) []int {
	var out []int
	for i, ok := range Reachable(n, start, next) {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

// Sinks returns, in ascending order, the nodes with no successors.
func Sinks(n int, next func(i int) []int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if len(next(i)) == 0 {
			out = append(out, i)
		}
	}
	return out
}
