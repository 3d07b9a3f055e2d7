// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// CostFunc reports the cost of entering h, or false if h cannot be entered at all.
type CostFunc func(h Hex) (cost int, ok bool)

// Reachable finds every hex that can be entered from start while spending at most budget.
// The result maps each reached hex to the best budget left on arrival; start itself is excluded.
// Hexes are expanded in order of remaining budget, so a hex reached again with an equal or
// smaller budget is never expanded twice.
func Reachable(start Hex, budget int, cost CostFunc) map[Hex]int {
	best := map[Hex]int{start: budget}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Hex: start, Budget: budget})
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Budget < best[current.Hex] {
			continue // a better entry was queued after this one
		}
		for _, neighbor := range current.Hex.Neighbors() {
			c, ok := cost(neighbor)
			if !ok || c < 0 || c > current.Budget {
				continue
			}
			left := current.Budget - c
			if prev, seen := best[neighbor]; seen && prev >= left {
				continue
			}
			best[neighbor] = left
			heap.Push(pq, &Node{Hex: neighbor, Budget: left})
		}
	}
	delete(best, start)
	return best
}

// PriorityQueue pops the node with the largest remaining budget first.
type PriorityQueue []*Node

type Node struct {
	Hex    Hex
	Budget int
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Budget > pq[j].Budget }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
