package gridpath

// frontierItem is one queued expansion. The same cell may be queued more
// than once; an entry whose GScore is worse than the live distance map value
// is stale and skipped when popped.
type frontierItem struct {
	Cell   Point
	GScore int
	FCost  int
}

// frontier is a min-heap over frontierItem, driven by container/heap.
// Ties on FCost fall back to (y, x) and then GScore so the expansion order
// is a strict total order.
type frontier []frontierItem

func (queue frontier) Len() int { return len(queue) }

func (queue frontier) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.Cell.Y != b.Cell.Y {
		return a.Cell.Y < b.Cell.Y
	}
	if a.Cell.X != b.Cell.X {
		return a.Cell.X < b.Cell.X
	}
	return a.GScore < b.GScore
}

func (queue frontier) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *frontier) Push(x any) {
	*queue = append(*queue, x.(frontierItem))
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
