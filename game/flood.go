package game

import "github.com/gammazero/deque"

type NeighborGetter func(Coord) []Coord

// Visitor marks a coordinate and reports whether the fill should continue
// through it. It must return false for any coordinate it has seen before.
type Visitor func(Coord) bool

// flood walks outward from start breadth-first. start itself is not visited;
// the caller has already handled it.
func flood(start Coord, visit Visitor, getNeighbors NeighborGetter) {
	visitQueue := deque.New[Coord]()
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		coord := visitQueue.PopFront()

		for _, neighbor := range getNeighbors(coord) {
			if visit(neighbor) {
				visitQueue.PushBack(neighbor)
			}
		}
	}
}
