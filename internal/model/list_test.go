package model_test

import (
	"testing"

	"github.com/jaekwang-park/todo-lists/internal/model"
)

func todos(completed ...bool) []model.Todo {
	out := make([]model.Todo, len(completed))
	for i, c := range completed {
		out[i] = model.Todo{ID: i + 1, Name: "todo", Completed: c}
	}
	return out
}

func TestList_Counts(t *testing.T) {
	l := model.List{ID: 1, Name: "Groceries", Todos: todos(true, false, false)}

	if got := l.TodoCount(); got != 3 {
		t.Errorf("TodoCount() = %d, want 3", got)
	}
	if got := l.RemainingCount(); got != 2 {
		t.Errorf("RemainingCount() = %d, want 2", got)
	}
}

func TestList_IsComplete(t *testing.T) {
	tests := []struct {
		name  string
		todos []model.Todo
		want  bool
	}{
		{"no todos", nil, false},
		{"empty slice", []model.Todo{}, false},
		{"single open", todos(false), false},
		{"single done", todos(true), true},
		{"mixed", todos(true, false), false},
		{"all done", todos(true, true, true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := model.List{Name: "l", Todos: tt.todos}
			if got := l.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}
