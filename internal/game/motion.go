package game

// scroller is implemented by every entity type through the embedded Entity.
type scroller interface {
	base() *Entity
}

// advance moves every active entity step units closer. onMove runs after
// each move. The first time an entity reaches distance <= 0 it is marked
// inactive and onArrive runs. The returned slice holds only the entities
// still active, in their original order, and reuses the input's storage.
func advance[T scroller](items []T, step float64, onMove, onArrive func(T)) []T {
	if step < 0 {
		step = 0
	}
	for _, it := range items {
		e := it.base()
		if !e.Active {
			continue
		}
		e.Distance -= step
		if onMove != nil {
			onMove(it)
		}
		if e.Distance <= 0 {
			e.Active = false
			if onArrive != nil {
				onArrive(it)
			}
		}
	}
	return compact(items)
}

// compact drops inactive entities in one pass.
func compact[T scroller](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.base().Active {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
