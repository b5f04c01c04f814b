package cli

import (
	"context"
	"strconv"
	"strings"
)

// Todos lists the to-do items.
func (a *App) Todos(ctx context.Context) error {
	todos, err := a.api.Todos(ctx)
	if err != nil {
		return a.reportFetchError(ctx, err, "Could not load to-dos.")
	}
	a.console.ShowTodos(todos)
	return nil
}

// AddTodo creates a new to-do item.
func (a *App) AddTodo(ctx context.Context, task string) error {
	task = strings.TrimSpace(task)
	if task == "" {
		a.messages.Notify("To-do text cannot be empty.")
		return nil
	}
	if _, err := a.api.AddTodo(ctx, task); err != nil {
		return a.reportFetchError(ctx, err, "Could not add the to-do.")
	}
	return a.Todos(ctx)
}

// SetTodoDone toggles completion for a to-do by id.
func (a *App) SetTodoDone(ctx context.Context, id string, done bool) error {
	todoID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		a.messages.Notify("To-do id must be a number.")
		return nil
	}

	// The update endpoint wants the task text too, so look it up first.
	todos, err := a.api.Todos(ctx)
	if err != nil {
		return a.reportFetchError(ctx, err, "Could not load to-dos.")
	}
	for _, td := range todos {
		if td.ID == todoID {
			if _, err := a.api.UpdateTodo(ctx, todoID, td.Task, done); err != nil {
				return a.reportFetchError(ctx, err, "Could not update the to-do.")
			}
			return a.Todos(ctx)
		}
	}
	a.messages.Notify("No such to-do.")
	return nil
}

// RemoveTodo deletes a to-do by id.
func (a *App) RemoveTodo(ctx context.Context, id string) error {
	todoID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		a.messages.Notify("To-do id must be a number.")
		return nil
	}
	if err := a.api.DeleteTodo(ctx, todoID); err != nil {
		return a.reportFetchError(ctx, err, "Could not delete the to-do.")
	}
	return a.Todos(ctx)
}
