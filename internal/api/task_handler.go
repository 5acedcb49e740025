package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskwell/taskboard-api/internal/api/shared"
	"github.com/taskwell/taskboard-api/internal/platform/logger"
	"github.com/taskwell/taskboard-api/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Health handles GET /api/health.
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{OK: true})
}

// ListTasks handles GET /api/tasks. The raw page/sort/order parameters go to
// the service untouched; normalization and defaulting happen there.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.taskService.List(r.Context(), q.Get("page"), q.Get("sort"), q.Get("order"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, ErrCodeFailedToList, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// CreateTask handles POST /api/tasks. Missing or empty fields, and bodies
// that do not decode, all map to the same username_email_text_required
// response before any store write.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ErrCodeFieldsRequired)
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, ErrCodeFieldsRequired)
		return
	}

	created, err := h.taskService.Create(r.Context(), req.Username, req.Email, req.Text)
	if err != nil {
		if status := MapErrorToStatusCode(err); status == http.StatusBadRequest {
			shared.RespondWithError(w, r, status, ErrCodeFieldsRequired)
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, ErrCodeFailedToCreate, err)
		return
	}

	logger.FromContext(r.Context()).Info("task created",
		"task_id", created.ID,
		"username", created.Username)
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdateTask handles PATCH /api/tasks/{id}. The auth middleware has already
// run by the time this executes, so the id format is only checked for
// authenticated callers. Wrong-typed body fields are dropped from the patch
// rather than rejected.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, ErrCodeInvalidID)
		return
	}

	// A body that does not decode contributes no fields, the same as one
	// carrying none; the update then degenerates to a no-op write.
	var req UpdateTaskRequest
	_ = shared.DecodeJSON(r, &req)

	updated, err := h.taskService.Update(r.Context(), id, req.Patch())
	if err != nil {
		switch MapErrorToStatusCode(err) {
		case http.StatusBadRequest:
			shared.RespondWithError(w, r, http.StatusBadRequest, ErrCodeInvalidID)
		case http.StatusNotFound:
			shared.RespondWithError(w, r, http.StatusNotFound, ErrCodeNotFound)
		default:
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, ErrCodeFailedToUpdate, err)
		}
		return
	}

	logger.FromContext(r.Context()).Info("task updated", "task_id", updated.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}
