package layout

import "fyne.io/fyne/v2"

// Engine is the placement engine a container delegates child bookkeeping to.
// The engine owns the ordered item list; containers hold indices into it.
type Engine interface {
	Count() int
	ItemAt(index int) Item
	IndexOf(object fyne.CanvasObject) int
	InsertItem(index int, item Item)
	RemoveItemAt(index int) Item
	ItemAtCell(row, col int) Item
	Transpose()
	SetGeometry(x, y, width, height float64)
	Items() []Item
}

type cell struct {
	row, col int
}

// GridEngine places items into grid cells. A stack container puts every item
// into cell (0,0); the engine keeps a bookkeeping entry per cell pointing at
// the first item occupying it.
type GridEngine struct {
	items      []Item
	placements []cell
	table      map[cell]int
}

func NewGridEngine() *GridEngine {
	return &GridEngine{table: map[cell]int{}}
}

func (e *GridEngine) Count() int {
	return len(e.items)
}

// ItemAt returns the item at index, or nil when out of range.
func (e *GridEngine) ItemAt(index int) Item {
	if index < 0 || index >= len(e.items) {
		return nil
	}
	return e.items[index]
}

// IndexOf returns the index of the item wrapping object, or -1.
func (e *GridEngine) IndexOf(object fyne.CanvasObject) int {
	if object == nil {
		return -1
	}
	for i, it := range e.items {
		if it.Object() == object {
			return i
		}
	}
	return -1
}

// InsertItem adds item at index, clamping out-of-range indices to the end.
func (e *GridEngine) InsertItem(index int, item Item) {
	if index < 0 || index > len(e.items) {
		index = len(e.items)
	}

	e.items = append(e.items, nil)
	copy(e.items[index+1:], e.items[index:])
	e.items[index] = item

	e.placements = append(e.placements, cell{})
	copy(e.placements[index+1:], e.placements[index:])
	e.placements[index] = cell{0, 0}

	e.rebuildTable()
}

// RemoveItemAt drops and returns the item at index, or nil when out of range.
func (e *GridEngine) RemoveItemAt(index int) Item {
	if index < 0 || index >= len(e.items) {
		return nil
	}
	item := e.items[index]
	e.items = append(e.items[:index], e.items[index+1:]...)
	e.placements = append(e.placements[:index], e.placements[index+1:]...)
	e.rebuildTable()
	return item
}

// ItemAtCell returns the bookkeeping entry for a cell, or nil when the cell
// has none.
func (e *GridEngine) ItemAtCell(row, col int) Item {
	if i, ok := e.table[cell{row, col}]; ok {
		return e.items[i]
	}
	return nil
}

// Transpose swaps rows and columns of every placement and re-derives the
// cell table.
func (e *GridEngine) Transpose() {
	for i, p := range e.placements {
		e.placements[i] = cell{p.col, p.row}
	}
	e.rebuildTable()
}

func (e *GridEngine) rebuildTable() {
	e.table = make(map[cell]int, len(e.items))
	for i := len(e.items) - 1; i >= 0; i-- {
		e.table[e.placements[i]] = i
	}
}

// SetGeometry assigns the content rect to every item in the stack. Hidden
// items are skipped unless they retain their size while hidden; they would
// be laid out again on show anyway.
func (e *GridEngine) SetGeometry(x, y, width, height float64) {
	pos := fyne.NewPos(float32(x), float32(y))
	size := fyne.NewSize(float32(width), float32(height))

	for _, it := range e.items {
		obj := it.Object()
		if !obj.Visible() && !it.RetainSizeWhenHidden() {
			continue
		}
		obj.Resize(size)
		obj.Move(pos)
	}
}

// Items returns a snapshot of the item list in index order.
func (e *GridEngine) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}
