// This file contains the HTTP handlers for the project endpoints.
package projects

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/projtrack-go/apperror"
	"github.com/user/projtrack-go/auth"
)

// ProjectHandlers handles HTTP requests for projects.
type ProjectHandlers struct {
	service *ProjectService
}

// NewProjectHandlers creates new ProjectHandlers.
func NewProjectHandlers(service *ProjectService) *ProjectHandlers {
	return &ProjectHandlers{service: service}
}

// RegisterRoutes registers the project API routes with a chi.Router. The
// caller mounts this under /api/projects with the JWT middleware applied.
func (h *ProjectHandlers) RegisterRoutes(router chi.Router) {
	router.Post("/", h.HandleCreate())
	router.Get("/", h.HandleList())
	router.Put("/{id}", h.HandleUpdate())
	router.Delete("/{id}", h.HandleDelete())
}

// HandleCreate godoc
// @Summary Create Project
// @Description Creates a project owned by the authenticated user.
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectBody body projects.CreateProjectRequest true "Project fields"
// @Success 201 {object} projects.Project "Project created"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing required fields or invalid status"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/projects [post]
func (h *ProjectHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		project, err := h.service.Create(r.Context(), ownerID, &req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, project)
	}
}

// HandleList godoc
// @Summary List Projects
// @Description Returns all projects owned by the authenticated user.
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} projects.Project "Owned projects"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/projects [get]
func (h *ProjectHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		projects, err := h.service.List(r.Context(), ownerID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, projects)
	}
}

// HandleUpdate godoc
// @Summary Update Project
// @Description Applies a patch to a project owned by the authenticated user.
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project id"
// @Param projectBody body projects.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} projects.Project "Updated project"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid status value"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No such project for this owner"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/projects/{id} [put]
func (h *ProjectHandlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		var req UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		project, err := h.service.Update(r.Context(), ownerID, chi.URLParam(r, "id"), &req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, project)
	}
}

// HandleDelete godoc
// @Summary Delete Project
// @Description Removes a project owned by the authenticated user.
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project id"
// @Success 200 {object} projects.MessageResponse "Project deleted"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No such project for this owner"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/projects/{id} [delete]
func (h *ProjectHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		if err := h.service.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, MessageResponse{Message: "project deleted successfully"})
	}
}
