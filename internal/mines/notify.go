package mines

// ChangeFunc receives a snapshot of a cell whose visible state changed.
type ChangeFunc func(CellInfo)

type observer struct {
	id int
	fn ChangeFunc
}

// Subscribe registers fn to be called, in registration order, every time a
// cell is opened, flagged or unflagged, has its count change while open, or
// becomes the explosion. The returned func removes the subscription.
func (f *Field) Subscribe(fn ChangeFunc) (cancel func()) {
	f.nextID++
	id := f.nextID
	f.observers = append(f.observers, observer{id: id, fn: fn})

	return func() {
		kept := make([]observer, 0, len(f.observers))
		for _, o := range f.observers {
			if o.id != id {
				kept = append(kept, o)
			}
		}
		f.observers = kept
	}
}

func (f *Field) notify(c *Cell) {
	if len(f.observers) == 0 {
		return
	}
	info := f.info(c)
	for _, o := range f.observers {
		o.fn(info)
	}
}

// Recorder collects change notifications so they can be drained as a batch
// after a command.
type Recorder struct {
	changes []CellInfo
}

func (r *Recorder) Record(c CellInfo) {
	r.changes = append(r.changes, c)
}

// Drain returns the recorded changes in the order they happened and resets
// the recorder.
func (r *Recorder) Drain() []CellInfo {
	out := r.changes
	r.changes = nil
	return out
}

func (r *Recorder) Len() int {
	return len(r.changes)
}
