package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/jaekwang-park/todo-lists/internal/repository"
)

// newTestDB connects to TEST_DATABASE_URL and starts from empty tables.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := repository.NewDB(dsn)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if _, err := db.ExecContext(ctx, `TRUNCATE lists, todos RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func TestPostgresList_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostgresList(db)
	ctx := context.Background()

	l, err := repo.CreateList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}

	if _, err := repo.CreateList(ctx, "Groceries"); !errors.Is(err, repository.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate name, got %v", err)
	}

	milk, err := repo.CreateTodo(ctx, l.ID, "Milk")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if _, err := repo.CreateTodo(ctx, l.ID, "Eggs"); err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	if err := repo.UpdateTodoStatus(ctx, l.ID, milk.ID, true); err != nil {
		t.Fatalf("UpdateTodoStatus: %v", err)
	}

	got, err := repo.FindList(ctx, l.ID)
	if err != nil {
		t.Fatalf("FindList: %v", err)
	}
	if got.TodoCount() != 2 || got.RemainingCount() != 1 {
		t.Errorf("expected 2 todos with 1 remaining, got %d/%d", got.TodoCount(), got.RemainingCount())
	}

	if err := repo.MarkAllTodosCompleted(ctx, l.ID); err != nil {
		t.Fatalf("MarkAllTodosCompleted: %v", err)
	}
	got, _ = repo.FindList(ctx, l.ID)
	if !got.IsComplete() {
		t.Error("expected list to be complete")
	}

	if err := repo.MarkAllTodosCompleted(ctx, l.ID+1000); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for missing list, got %v", err)
	}

	if err := repo.UpdateListName(ctx, l.ID, "Shopping"); err != nil {
		t.Fatalf("UpdateListName: %v", err)
	}

	if err := repo.DeleteList(ctx, l.ID); err != nil {
		t.Fatalf("DeleteList: %v", err)
	}
	if _, err := repo.FindList(ctx, l.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}

	var orphans int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM todos WHERE list_id = $1`, l.ID).Scan(&orphans); err != nil {
		t.Fatalf("count todos: %v", err)
	}
	if orphans != 0 {
		t.Errorf("expected todos to cascade, found %d", orphans)
	}
}

func TestPostgresList_AllListsIncludesEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostgresList(db)
	ctx := context.Background()

	a, _ := repo.CreateList(ctx, "a")
	repo.CreateList(ctx, "b")
	repo.CreateTodo(ctx, a.ID, "x")

	lists, err := repo.AllLists(ctx)
	if err != nil {
		t.Fatalf("AllLists: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].TodoCount() != 1 || lists[1].TodoCount() != 0 {
		t.Errorf("unexpected todo counts: %d, %d", lists[0].TodoCount(), lists[1].TodoCount())
	}
}

func TestPostgresList_CreateTodoMissingList(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostgresList(db)

	_, err := repo.CreateTodo(context.Background(), 999, "x")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}
