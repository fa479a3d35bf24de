package memory

// arena хранит записи одного типа в срезе, индексированном id-1.
// Удаление оставляет nil на месте записи, поэтому id никогда не переиспользуются.
type arena[T any] struct {
	rows  []*T
	clone func(T) T
}

func newArena[T any](clone func(T) T) *arena[T] {
	return &arena[T]{clone: clone}
}

// nextID возвращает id, который получит следующая вставленная запись.
func (a *arena[T]) nextID() int64 {
	return int64(len(a.rows)) + 1
}

// insert сохраняет запись, построенную build для очередного id, и возвращает её копию.
func (a *arena[T]) insert(build func(id int64) T) T {
	v := build(a.nextID())
	a.rows = append(a.rows, &v)
	return a.clone(v)
}

func (a *arena[T]) slot(id int64) (*T, bool) {
	if id < 1 || id > int64(len(a.rows)) {
		return nil, false
	}
	row := a.rows[id-1]
	return row, row != nil
}

func (a *arena[T]) get(id int64) (T, bool) {
	row, ok := a.slot(id)
	if !ok {
		var zero T
		return zero, false
	}
	return a.clone(*row), true
}

// update заменяет запись результатом fn и возвращает копию новой версии.
func (a *arena[T]) update(id int64, fn func(T) T) (T, bool) {
	row, ok := a.slot(id)
	if !ok {
		var zero T
		return zero, false
	}
	*row = fn(*row)
	return a.clone(*row), true
}

func (a *arena[T]) delete(id int64) bool {
	if _, ok := a.slot(id); !ok {
		return false
	}
	a.rows[id-1] = nil
	return true
}

// find возвращает копии живых записей, удовлетворяющих match, в порядке id.
func (a *arena[T]) find(match func(T) bool) []T {
	out := make([]T, 0)
	for _, row := range a.rows {
		if row != nil && (match == nil || match(*row)) {
			out = append(out, a.clone(*row))
		}
	}
	return out
}

func (a *arena[T]) first(match func(T) bool) (T, bool) {
	for _, row := range a.rows {
		if row != nil && match(*row) {
			return a.clone(*row), true
		}
	}
	var zero T
	return zero, false
}
