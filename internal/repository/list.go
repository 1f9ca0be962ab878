package repository

import (
	"context"
	"errors"

	"github.com/jaekwang-park/todo-lists/internal/model"
)

// ErrConflict is returned when a write would break a uniqueness constraint.
var ErrConflict = errors.New("conflict")

// ListRepository persists lists and the todos they own.
// Lookups and writes that match no row return an error wrapping sql.ErrNoRows.
// MarkAllTodosCompleted only fails that way when the list itself is absent.
type ListRepository interface {
	FindList(ctx context.Context, id int) (model.List, error)
	AllLists(ctx context.Context) ([]model.List, error)
	CreateList(ctx context.Context, name string) (model.List, error)
	UpdateListName(ctx context.Context, id int, name string) error
	DeleteList(ctx context.Context, id int) error
	CreateTodo(ctx context.Context, listID int, name string) (model.Todo, error)
	DeleteTodo(ctx context.Context, listID, todoID int) error
	UpdateTodoStatus(ctx context.Context, listID, todoID int, completed bool) error
	MarkAllTodosCompleted(ctx context.Context, listID int) error
}
