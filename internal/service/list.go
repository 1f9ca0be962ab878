package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jaekwang-park/todo-lists/internal/model"
	"github.com/jaekwang-park/todo-lists/internal/repository"
)

// ListService applies validation in front of a ListRepository. Every
// mutating method issues at most one repository write.
type ListService struct {
	repo repository.ListRepository
}

func NewListService(repo repository.ListRepository) *ListService {
	return &ListService{repo: repo}
}

func (s *ListService) Lists(ctx context.Context) ([]model.List, error) {
	lists, err := s.repo.AllLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	return lists, nil
}

func (s *ListService) Get(ctx context.Context, id int) (model.List, error) {
	l, err := s.repo.FindList(ctx, id)
	if err != nil {
		return model.List{}, wrapRepoError("failed to get list", err)
	}
	return l, nil
}

func (s *ListService) CreateList(ctx context.Context, name string) (model.List, error) {
	name = strings.TrimSpace(name)

	existing, err := s.Lists(ctx)
	if err != nil {
		return model.List{}, err
	}
	if err := ValidateListName(name, existing); err != nil {
		return model.List{}, err
	}

	created, err := s.repo.CreateList(ctx, name)
	if err != nil {
		return model.List{}, wrapRepoError("failed to create list", err)
	}
	return created, nil
}

func (s *ListService) RenameList(ctx context.Context, id int, name string) error {
	name = strings.TrimSpace(name)

	existing, err := s.Lists(ctx)
	if err != nil {
		return err
	}
	if err := ValidateListName(name, existing); err != nil {
		return err
	}

	if err := s.repo.UpdateListName(ctx, id, name); err != nil {
		return wrapRepoError("failed to rename list", err)
	}
	return nil
}

func (s *ListService) DeleteList(ctx context.Context, id int) error {
	if err := s.repo.DeleteList(ctx, id); err != nil {
		return wrapRepoError("failed to delete list", err)
	}
	return nil
}

func (s *ListService) AddTodo(ctx context.Context, listID int, name string) (model.Todo, error) {
	name = strings.TrimSpace(name)
	if err := ValidateTodoName(name); err != nil {
		return model.Todo{}, err
	}

	todo, err := s.repo.CreateTodo(ctx, listID, name)
	if err != nil {
		return model.Todo{}, wrapRepoError("failed to add todo", err)
	}
	return todo, nil
}

func (s *ListService) DeleteTodo(ctx context.Context, listID, todoID int) error {
	if err := s.repo.DeleteTodo(ctx, listID, todoID); err != nil {
		return wrapRepoError("failed to delete todo", err)
	}
	return nil
}

func (s *ListService) SetTodoCompleted(ctx context.Context, listID, todoID int, completed bool) error {
	if err := s.repo.UpdateTodoStatus(ctx, listID, todoID, completed); err != nil {
		return wrapRepoError("failed to update todo", err)
	}
	return nil
}

func (s *ListService) CompleteAll(ctx context.Context, listID int) error {
	if err := s.repo.MarkAllTodosCompleted(ctx, listID); err != nil {
		return wrapRepoError("failed to complete todos", err)
	}
	return nil
}

// wrapRepoError translates repository sentinels into service errors.
func wrapRepoError(msg string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrDuplicateName, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
