package kvo

// OnErrorFunc receives errors returned by change callbacks. The engine
// itself never calls it for its own failures, which are returned from
// BindTo/Set/Unbind directly.
type OnErrorFunc func(obj *Object, key string, err error)

// System owns the arena of shared value cells. Every object created
// from one System may bind against every other; objects from different
// systems must not be mixed.
//
// A System is a single mutation context: BindTo, Set and Unbind run to
// completion synchronously and callbacks may re-enter the engine, so
// the System holds no locks. Callers that share a System across
// goroutines must serialize every call themselves.
type System struct {
	cells   []*cell
	onError OnErrorFunc
}

func NewSystem(onError OnErrorFunc) *System {
	return &System{
		// id 0 reserved as the unset descriptor state
		cells:   make([]*cell, 1),
		onError: onError,
	}
}

func (s *System) alloc(value any, root entry) cellID {
	id := cellID(len(s.cells))
	s.cells = append(s.cells, &cell{
		value: value,
		table: []entry{root},
	})
	return id
}

func (s *System) cell(id cellID) *cell {
	return s.cells[id]
}

func (s *System) release(id cellID) {
	s.cells[id] = nil
}

// notify invokes the registered change callback of owner[key], if any,
// routing a returned error to the system's error handler.
func (s *System) notify(owner *Object, key string, value any) {
	fn := owner.handlers[key]
	if fn == nil {
		return
	}
	if err := fn(value); err != nil && s.onError != nil {
		s.onError(owner, key, err)
	}
}
