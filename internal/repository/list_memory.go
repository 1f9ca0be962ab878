package repository

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"

	"github.com/jaekwang-park/todo-lists/internal/model"
)

// MemoryListRepository keeps lists in process memory. Used for local runs
// with STORAGE=memory and in tests.
type MemoryListRepository struct {
	mu         sync.Mutex
	lists      []model.List
	nextListID int
	nextTodoID map[int]int
}

func NewMemoryList() *MemoryListRepository {
	return &MemoryListRepository{
		nextListID: 1,
		nextTodoID: make(map[int]int),
	}
}

func (r *MemoryListRepository) FindList(ctx context.Context, id int) (model.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.List{}, fmt.Errorf("list %d: %w", id, sql.ErrNoRows)
	}
	return cloneList(r.lists[i]), nil
}

func (r *MemoryListRepository) AllLists(ctx context.Context) ([]model.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.List, len(r.lists))
	for i, l := range r.lists {
		out[i] = cloneList(l)
	}
	return out, nil
}

func (r *MemoryListRepository) CreateList(ctx context.Context, name string) (model.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(name, 0) {
		return model.List{}, fmt.Errorf("%w: list name %q already exists", ErrConflict, name)
	}

	l := model.List{ID: r.nextListID, Name: name, Todos: []model.Todo{}}
	r.nextListID++
	r.nextTodoID[l.ID] = 1
	r.lists = append(r.lists, l)
	return cloneList(l), nil
}

func (r *MemoryListRepository) UpdateListName(ctx context.Context, id int, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return sql.ErrNoRows
	}
	if r.nameTaken(name, id) {
		return fmt.Errorf("%w: list name %q already exists", ErrConflict, name)
	}
	r.lists[i].Name = name
	return nil
}

func (r *MemoryListRepository) DeleteList(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return sql.ErrNoRows
	}
	r.lists = slices.Delete(r.lists, i, i+1)
	delete(r.nextTodoID, id)
	return nil
}

func (r *MemoryListRepository) CreateTodo(ctx context.Context, listID int, name string) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(listID)
	if i < 0 {
		return model.Todo{}, fmt.Errorf("list %d: %w", listID, sql.ErrNoRows)
	}

	t := model.Todo{ID: r.nextTodoID[listID], ListID: listID, Name: name}
	r.nextTodoID[listID]++
	r.lists[i].Todos = append(r.lists[i].Todos, t)
	return t, nil
}

func (r *MemoryListRepository) DeleteTodo(ctx context.Context, listID, todoID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, j := r.todoIndexOf(listID, todoID)
	if j < 0 {
		return sql.ErrNoRows
	}
	r.lists[i].Todos = slices.Delete(r.lists[i].Todos, j, j+1)
	return nil
}

func (r *MemoryListRepository) UpdateTodoStatus(ctx context.Context, listID, todoID int, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, j := r.todoIndexOf(listID, todoID)
	if j < 0 {
		return sql.ErrNoRows
	}
	r.lists[i].Todos[j].Completed = completed
	return nil
}

func (r *MemoryListRepository) MarkAllTodosCompleted(ctx context.Context, listID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(listID)
	if i < 0 {
		return fmt.Errorf("list %d: %w", listID, sql.ErrNoRows)
	}
	for j := range r.lists[i].Todos {
		r.lists[i].Todos[j].Completed = true
	}
	return nil
}

func (r *MemoryListRepository) indexOf(id int) int {
	return slices.IndexFunc(r.lists, func(l model.List) bool { return l.ID == id })
}

func (r *MemoryListRepository) todoIndexOf(listID, todoID int) (int, int) {
	i := r.indexOf(listID)
	if i < 0 {
		return -1, -1
	}
	j := slices.IndexFunc(r.lists[i].Todos, func(t model.Todo) bool { return t.ID == todoID })
	return i, j
}

func (r *MemoryListRepository) nameTaken(name string, exceptID int) bool {
	return slices.ContainsFunc(r.lists, func(l model.List) bool {
		return l.Name == name && l.ID != exceptID
	})
}

func cloneList(l model.List) model.List {
	l.Todos = append([]model.Todo{}, l.Todos...)
	return l
}

var _ ListRepository = (*MemoryListRepository)(nil)
