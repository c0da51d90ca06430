package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"dungeoncrawler/pkg/engine/world"
)

// Reachable flood-fills orthogonally over floor cells from start.
// The result is empty when start is not a floor cell.
func Reachable(floor mapset.Set[world.Position], start world.Position) mapset.Set[world.Position] {
	visited := mapset.New[world.Position]()
	if !floor.Has(start) {
		return visited
	}

	q := queue.New[world.Position]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, n := range current.Neighbors4() {
			if floor.Has(n) && !visited.Has(n) {
				visited.Put(n)
				q.Enqueue(n)
			}
		}
	}

	return visited
}

// Connected reports whether every room centre is reachable from the first room's centre
func Connected(d *Dungeon) bool {
	if len(d.Rooms) == 0 {
		return true
	}
	reached := Reachable(d.Floor, d.Rooms[0].Inner.Center())
	for _, room := range d.Rooms {
		if !reached.Has(room.Inner.Center()) {
			return false
		}
	}
	return true
}
