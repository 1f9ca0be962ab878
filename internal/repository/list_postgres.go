package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jaekwang-park/todo-lists/internal/model"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type PostgresListRepository struct {
	db *sql.DB
}

func NewPostgresList(db *sql.DB) *PostgresListRepository {
	return &PostgresListRepository{db: db}
}

const selectListsWithTodos = `
	SELECT l.id, l.name, t.id, t.name, t.completed
	FROM lists l
	LEFT JOIN todos t ON t.list_id = l.id`

func (r *PostgresListRepository) FindList(ctx context.Context, id int) (model.List, error) {
	query := selectListsWithTodos + `
		WHERE l.id = $1
		ORDER BY t.id`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return model.List{}, fmt.Errorf("failed to find list: %w", err)
	}
	defer rows.Close()

	lists, err := collectLists(rows)
	if err != nil {
		return model.List{}, err
	}
	if len(lists) == 0 {
		return model.List{}, fmt.Errorf("list %d: %w", id, sql.ErrNoRows)
	}

	return lists[0], nil
}

func (r *PostgresListRepository) AllLists(ctx context.Context) ([]model.List, error) {
	query := selectListsWithTodos + `
		ORDER BY l.id, t.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	return collectLists(rows)
}

func (r *PostgresListRepository) CreateList(ctx context.Context, name string) (model.List, error) {
	query := `INSERT INTO lists (name) VALUES ($1) RETURNING id, name`

	var l model.List
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&l.ID, &l.Name); err != nil {
		return model.List{}, fmt.Errorf("failed to create list: %w", mapPQError(err))
	}
	l.Todos = []model.Todo{}
	return l, nil
}

func (r *PostgresListRepository) UpdateListName(ctx context.Context, id int, name string) error {
	query := `UPDATE lists SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", mapPQError(err))
	}
	return requireAffected(result)
}

func (r *PostgresListRepository) DeleteList(ctx context.Context, id int) error {
	// todos go with it through ON DELETE CASCADE
	query := `DELETE FROM lists WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return requireAffected(result)
}

func (r *PostgresListRepository) CreateTodo(ctx context.Context, listID int, name string) (model.Todo, error) {
	query := `
		INSERT INTO todos (list_id, name)
		VALUES ($1, $2)
		RETURNING id, list_id, name, completed`

	var t model.Todo
	err := r.db.QueryRowContext(ctx, query, listID, name).Scan(&t.ID, &t.ListID, &t.Name, &t.Completed)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", mapPQError(err))
	}
	return t, nil
}

func (r *PostgresListRepository) DeleteTodo(ctx context.Context, listID, todoID int) error {
	query := `DELETE FROM todos WHERE list_id = $1 AND id = $2`

	result, err := r.db.ExecContext(ctx, query, listID, todoID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return requireAffected(result)
}

func (r *PostgresListRepository) UpdateTodoStatus(ctx context.Context, listID, todoID int, completed bool) error {
	query := `UPDATE todos SET completed = $1 WHERE list_id = $2 AND id = $3`

	result, err := r.db.ExecContext(ctx, query, completed, listID, todoID)
	if err != nil {
		return fmt.Errorf("failed to update todo status: %w", err)
	}
	return requireAffected(result)
}

func (r *PostgresListRepository) MarkAllTodosCompleted(ctx context.Context, listID int) error {
	// a list without todos updates nothing, so existence is checked separately
	query := `
		WITH target AS (SELECT id FROM lists WHERE id = $1),
		     done AS (UPDATE todos SET completed = true WHERE list_id IN (SELECT id FROM target))
		SELECT count(*) FROM target`

	var found int
	if err := r.db.QueryRowContext(ctx, query, listID).Scan(&found); err != nil {
		return fmt.Errorf("failed to complete todos: %w", err)
	}
	if found == 0 {
		return fmt.Errorf("list %d: %w", listID, sql.ErrNoRows)
	}
	return nil
}

// collectLists folds joined list/todo rows into lists, preserving row order.
func collectLists(rows *sql.Rows) ([]model.List, error) {
	lists := []model.List{}
	index := make(map[int]int)

	for rows.Next() {
		var (
			listID        int
			listName      string
			todoID        sql.NullInt64
			todoName      sql.NullString
			todoCompleted sql.NullBool
		)
		if err := rows.Scan(&listID, &listName, &todoID, &todoName, &todoCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan list row: %w", err)
		}

		i, ok := index[listID]
		if !ok {
			lists = append(lists, model.List{ID: listID, Name: listName, Todos: []model.Todo{}})
			i = len(lists) - 1
			index[listID] = i
		}

		if todoID.Valid {
			lists[i].Todos = append(lists[i].Todos, model.Todo{
				ID:        int(todoID.Int64),
				ListID:    listID,
				Name:      todoName.String,
				Completed: todoCompleted.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	return lists, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", ErrConflict, pqErr.Message)
	case pqForeignKeyViolation:
		return fmt.Errorf("%s: %w", pqErr.Message, sql.ErrNoRows)
	}
	return err
}

var _ ListRepository = (*PostgresListRepository)(nil)
