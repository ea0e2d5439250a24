package api

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anand7670/portfolio-backend/database"
	"github.com/anand7670/portfolio-backend/errs"
	"github.com/anand7670/portfolio-backend/models"
	"github.com/anand7670/portfolio-backend/storage"
)

const maxMultipartMemory = 32 << 20

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	store       storage.Store
}

func newProjectHandler(projectRepo *database.ProjectRepo, store storage.Store) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		store:       store,
	}
}

// getAllProjects retrieves all projects ordered by sort order, then newest first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

type projectForm struct {
	Title           string `validate:"required,min=1,max=200"`
	Description     string `validate:"required,min=1,max=500"`
	LongDescription string
	Technologies    []string
	LiveURL         string
	GithubURL       string
	DemoURL         string
	Featured        bool
	Status          string `validate:"oneof=completed in-progress planned"`
	Order           int
	ReplaceImages   bool
}

// parseProjectForm reads the multipart form fields shared by create and
// update. Scalar fields are taken as given: an omitted optional field comes
// back empty, matching the full-replace contract of update.
func parseProjectForm(r *http.Request) (*projectForm, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, errs.NewMalformedPayloadError("multipart form", err)
	}

	form := &projectForm{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Description:     strings.TrimSpace(r.FormValue("description")),
		LongDescription: r.FormValue("longDescription"),
		LiveURL:         r.FormValue("liveUrl"),
		GithubURL:       r.FormValue("githubUrl"),
		DemoURL:         r.FormValue("demoUrl"),
		Featured:        r.FormValue("featured") == "true",
		Status:          r.FormValue("status"),
		ReplaceImages:   r.FormValue("replaceImages") == "true",
	}

	if form.Status == "" {
		form.Status = models.StatusCompleted
	}
	if order, err := strconv.Atoi(r.FormValue("order")); err == nil {
		form.Order = order
	}
	if technologies := r.FormValue("technologies"); technologies != "" {
		for _, t := range strings.Split(technologies, ",") {
			if t = strings.TrimSpace(t); t != "" {
				form.Technologies = append(form.Technologies, t)
			}
		}
	}

	if err := validate.Struct(form); err != nil {
		return nil, validationError(err)
	}

	return form, nil
}

// saveImages accepts each uploaded image through the asset store. A failure
// mid-batch rolls back the images already stored for this request.
func (h projectHandler) saveImages(ctx context.Context, files []*multipart.FileHeader, alt string) ([]models.ProjectImage, error) {
	if len(files) > storage.MaxImagesPerUpload {
		return nil, errs.NewTooManyFilesError(len(files), storage.MaxImagesPerUpload)
	}

	var images []models.ProjectImage
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.removeImages(ctx, images)
			return nil, errs.NewInternalErrorWithCause("failed to open uploaded file", err)
		}

		asset, err := h.store.Save(ctx, storage.KindProjectImage, fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
		f.Close()
		if err != nil {
			h.removeImages(ctx, images)
			return nil, err
		}

		images = append(images, models.ProjectImage{
			Filename: asset.Filename,
			Path:     asset.Path,
			Alt:      alt,
		})
	}

	return images, nil
}

// removeImages deletes image bytes best-effort; failures are logged and
// never abort the enclosing operation
func (h projectHandler) removeImages(ctx context.Context, images []models.ProjectImage) {
	for _, img := range images {
		asset := storage.StoredAsset{Filename: img.Filename, Path: img.Path}
		if err := h.store.Remove(ctx, asset); err != nil {
			h.logger.Warn().Err(err).Str("path", img.Path).Msg("failed to remove project image")
		}
	}
}

// createProject creates a new project from a multipart form with up to five images
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var images []models.ProjectImage
		if r.MultipartForm != nil {
			images, err = h.saveImages(r.Context(), r.MultipartForm.File["images"], form.Title)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		project := &models.Project{
			Title:           form.Title,
			Description:     form.Description,
			LongDescription: form.LongDescription,
			Technologies:    form.Technologies,
			Images:          images,
			LiveURL:         form.LiveURL,
			GithubURL:       form.GithubURL,
			DemoURL:         form.DemoURL,
			Featured:        form.Featured,
			Status:          form.Status,
			Order:           form.Order,
		}

		if err := h.projectRepo.Add(project); err != nil {
			h.removeImages(r.Context(), images)
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject fully replaces the scalar fields of an existing project and
// either appends or substitutes its images per the replaceImages flag
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		form, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.Title = form.Title
		project.Description = form.Description
		project.LongDescription = form.LongDescription
		project.Technologies = form.Technologies
		project.LiveURL = form.LiveURL
		project.GithubURL = form.GithubURL
		project.DemoURL = form.DemoURL
		project.Featured = form.Featured
		project.Status = form.Status
		project.Order = form.Order

		if r.MultipartForm != nil && len(r.MultipartForm.File["images"]) > 0 {
			newImages, err := h.saveImages(r.Context(), r.MultipartForm.File["images"], form.Title)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}

			if form.ReplaceImages {
				h.removeImages(r.Context(), project.Images)
				project.Images = newImages
			} else {
				project.Images = append(project.Images, newImages...)
			}
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes the project and, best-effort, every image asset it references
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		// Image removal failures do not abort the entity deletion
		h.removeImages(r.Context(), project.Images)

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Project deleted successfully",
		})
	}
}

func parseProjectID(r *http.Request) (uuid.UUID, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}
