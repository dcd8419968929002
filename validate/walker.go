package validate

import "github.com/katalvlaran/automata/fsa"

// reachableCount walks the automaton graph from start with an explicit stack
// and returns how many states were visited. undirected selects the mirrored
// adjacency view. The visited-set result is order-independent, so an
// explicit-stack DFS is used purely to keep correctness free of
// recursion-depth limits.
// Complexity: O(n²) on the dense adjacency, memory O(n).
func reachableCount(a *fsa.Automaton, start int, undirected bool) int {
	n := a.NumStates()
	if n == 0 || start < 0 || start >= n {
		return 0
	}

	visited := make([]bool, n)
	stack := make([]int, 0, n)
	visited[start] = true
	stack = append(stack, start)
	count := 1

	for len(stack) > 0 {
		u := stack[len(stack)-1] // pop
		stack = stack[:len(stack)-1]

		var next []int
		if undirected {
			next = a.Neighbors(u)
		} else {
			next = a.Successors(u)
		}
		for _, v := range next {
			if !visited[v] {
				visited[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}

	return count
}
