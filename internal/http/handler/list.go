package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jaekwang-park/todo-lists/internal/middleware"
	"github.com/jaekwang-park/todo-lists/internal/model"
	"github.com/jaekwang-park/todo-lists/internal/service"
	"github.com/jaekwang-park/todo-lists/internal/session"
	"github.com/jaekwang-park/todo-lists/internal/view"
)

const (
	msgListNotFound   = "The specified list was not found."
	msgTodoNotFound   = "The specified todo was not found."
	msgListLength     = "List name must be between 1 and 100 characters."
	msgListUnique     = "List name must be unique."
	msgTodoLength     = "Todo must be between 1 and 100 characters."
	msgListCreated    = "The list has been created."
	msgListUpdated    = "The list has been updated."
	msgListDeleted    = "The list has been deleted."
	msgTodoAdded      = "The todo was added."
	msgTodoDeleted    = "The todo has been deleted."
	msgTodoUpdated    = "The todo has been updated."
	msgTodosCompleted = "All todos have been completed."
)

type ListHandler struct {
	svc      *service.ListService
	renderer *view.Renderer
	logger   *slog.Logger
}

func NewListHandler(svc *service.ListService, renderer *view.Renderer, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, renderer: renderer, logger: logger}
}

// Register mounts the list routes on mux.
func (h *ListHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /lists", h.handleIndex)
	mux.HandleFunc("GET /lists/new", h.handleNew)
	mux.HandleFunc("POST /lists", h.handleCreate)
	mux.HandleFunc("GET /lists/{id}", h.handleShow)
	mux.HandleFunc("GET /lists/{id}/edit", h.handleEdit)
	mux.HandleFunc("POST /lists/{id}", h.handleUpdate)
	mux.HandleFunc("POST /lists/{id}/destroy", h.handleDestroy)
	mux.HandleFunc("POST /lists/{id}/complete_all", h.handleCompleteAll)
	mux.HandleFunc("POST /lists/{list_id}/todos", h.handleAddTodo)
	mux.HandleFunc("POST /lists/{list_id}/todos/{id}", h.handleUpdateTodo)
	mux.HandleFunc("POST /lists/{list_id}/todos/{id}/destroy", h.handleDestroyTodo)
}

func (h *ListHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

func (h *ListHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.Lists(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageLists, "", view.NewListsData(lists))
}

func (h *ListHandler) handleNew(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageNewList, "New List", view.NewListForm{})
}

func (h *ListHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("list_name")
	sess := session.FromContext(r.Context())

	if _, err := h.svc.CreateList(r.Context(), name); err != nil {
		if isValidation(err) {
			sess.SetError(listNameMessage(err))
			h.render(w, r, http.StatusUnprocessableEntity, view.PageNewList, "New List", view.NewListForm{ListName: name})
			return
		}
		h.serverError(w, r, err)
		return
	}

	sess.SetSuccess(msgListCreated)
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

func (h *ListHandler) handleShow(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "id")
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, view.PageList, list.Name, view.NewListData(list, ""))
}

func (h *ListHandler) handleEdit(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "id")
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, view.PageEditList, "Edit "+list.Name, view.NewEditListData(list, list.Name))
}

func (h *ListHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "id")
	if !ok {
		return
	}
	name := r.FormValue("list_name")
	sess := session.FromContext(r.Context())

	if err := h.svc.RenameList(r.Context(), list.ID, name); err != nil {
		switch {
		case isValidation(err):
			sess.SetError(listNameMessage(err))
			h.render(w, r, http.StatusUnprocessableEntity, view.PageEditList, "Edit "+list.Name, view.NewEditListData(list, name))
		case errors.Is(err, service.ErrNotFound):
			h.notFound(w, r, msgListNotFound, "/lists")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	sess.SetSuccess(msgListUpdated)
	http.Redirect(w, r, listPath(list.ID), http.StatusSeeOther)
}

func (h *ListHandler) handleDestroy(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	programmatic := middleware.IsProgrammatic(r)

	if err := h.svc.DeleteList(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r, msgListNotFound, "/lists")
			return
		}
		h.serverError(w, r, err)
		return
	}

	session.FromContext(r.Context()).SetSuccess(msgListDeleted)
	respond(w, r, programmatic, outcome{Location: "/lists", Status: http.StatusOK, Body: "/lists"})
}

func (h *ListHandler) handleCompleteAll(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.CompleteAll(r.Context(), list.ID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r, msgListNotFound, "/lists")
			return
		}
		h.serverError(w, r, err)
		return
	}

	session.FromContext(r.Context()).SetSuccess(msgTodosCompleted)
	http.Redirect(w, r, listPath(list.ID), http.StatusSeeOther)
}

func (h *ListHandler) handleAddTodo(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "list_id")
	if !ok {
		return
	}
	name := r.FormValue("todo")
	sess := session.FromContext(r.Context())

	if _, err := h.svc.AddTodo(r.Context(), list.ID, name); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLength):
			sess.SetError(msgTodoLength)
			h.render(w, r, http.StatusUnprocessableEntity, view.PageList, list.Name, view.NewListData(list, name))
		case errors.Is(err, service.ErrNotFound):
			h.notFound(w, r, msgListNotFound, "/lists")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	sess.SetSuccess(msgTodoAdded)
	http.Redirect(w, r, listPath(list.ID), http.StatusSeeOther)
}

func (h *ListHandler) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "list_id")
	if !ok {
		return
	}
	todoID := pathID(r, "id")
	completed := r.FormValue("completed") == "true"

	if err := h.svc.SetTodoCompleted(r.Context(), list.ID, todoID, completed); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r, msgTodoNotFound, listPath(list.ID))
			return
		}
		h.serverError(w, r, err)
		return
	}

	session.FromContext(r.Context()).SetSuccess(msgTodoUpdated)
	http.Redirect(w, r, listPath(list.ID), http.StatusSeeOther)
}

func (h *ListHandler) handleDestroyTodo(w http.ResponseWriter, r *http.Request) {
	list, ok := h.loadList(w, r, "list_id")
	if !ok {
		return
	}
	todoID := pathID(r, "id")
	programmatic := middleware.IsProgrammatic(r)

	if err := h.svc.DeleteTodo(r.Context(), list.ID, todoID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r, msgTodoNotFound, listPath(list.ID))
			return
		}
		h.serverError(w, r, err)
		return
	}

	// script callers remove the row in place, so there is no page to show a flash on
	if !programmatic {
		session.FromContext(r.Context()).SetSuccess(msgTodoDeleted)
	}
	respond(w, r, programmatic, outcome{Location: listPath(list.ID), Status: http.StatusNoContent})
}

// loadList fetches the list named by the path parameter. When it is absent
// the response has already been written and ok is false.
func (h *ListHandler) loadList(w http.ResponseWriter, r *http.Request, param string) (model.List, bool) {
	list, err := h.svc.Get(r.Context(), pathID(r, param))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(w, r, msgListNotFound, "/lists")
		} else {
			h.serverError(w, r, err)
		}
		return model.List{}, false
	}
	return list, true
}

// render shows the pending flash. It is consumed only once the page has
// rendered, before any byte of the response is written.
func (h *ListHandler) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	sess := session.FromContext(r.Context())
	body, err := h.renderer.Execute(view.Page{
		Name:  page,
		Title: title,
		Flash: sess.Peek(),
		Data:  data,
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	sess.Pop()

	if err := view.WriteHTML(w, status, body); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write page", "error", err, "request_id", middleware.GetRequestID(r))
	}
}

func (h *ListHandler) notFound(w http.ResponseWriter, r *http.Request, msg, location string) {
	if middleware.IsProgrammatic(r) {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", msg)
		return
	}
	session.FromContext(r.Context()).SetError(msg)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func (h *ListHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed",
		"error", err,
		"request_id", middleware.GetRequestID(r),
		"method", r.Method,
		"path", r.URL.Path,
	)
	if middleware.IsProgrammatic(r) {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// pathID parses a numeric path parameter. Malformed values map to 0, which
// never names a stored record.
func pathID(r *http.Request, name string) int {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0
	}
	return id
}

func listPath(id int) string {
	return fmt.Sprintf("/lists/%d", id)
}

func isValidation(err error) bool {
	return errors.Is(err, service.ErrInvalidLength) || errors.Is(err, service.ErrDuplicateName)
}

func listNameMessage(err error) string {
	if errors.Is(err, service.ErrDuplicateName) {
		return msgListUnique
	}
	return msgListLength
}
