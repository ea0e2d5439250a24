package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anand7670/portfolio-backend/database"
	"github.com/anand7670/portfolio-backend/errs"
	"github.com/anand7670/portfolio-backend/models"
	"github.com/anand7670/portfolio-backend/storage"
)

type portfolioHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
	projectRepo   *database.ProjectRepo
	store         storage.Store
}

func newPortfolioHandler(portfolioRepo *database.PortfolioRepo, projectRepo *database.ProjectRepo, store storage.Store) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
		projectRepo:   projectRepo,
		store:         store,
	}
}

// PortfolioResponse bundles the profile singleton with the project catalog
type PortfolioResponse struct {
	Portfolio *models.Portfolio `json:"portfolio"`
	Projects  []*models.Project `json:"projects"`
}

// getPortfolio returns the portfolio singleton and the ordered project
// catalog, lazily creating the singleton with defaults on first read
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolio, err := h.portfolioRepo.FindOrCreate()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio", "portfolio", err))
			return
		}

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, PortfolioResponse{
			Portfolio: portfolio,
			Projects:  projects,
		})
	}
}

type personalInfoRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Tagline      *string `json:"tagline"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Github       *string `json:"github"`
	Linkedin     *string `json:"linkedin"`
	ProfileImage *string `json:"profileImage"`
}

// updatePersonalInfo merges the provided fields into the personalInfo
// sub-structure. Fields not present in the payload are preserved; name and
// email are always required.
func (h portfolioHandler) updatePersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req personalInfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("personal info", err))
			return
		}

		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if err := validate.Var(*req.Email, "required,email"); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}

		portfolio, err := h.portfolioRepo.FindOrCreate()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio", "portfolio", err))
			return
		}

		info := &portfolio.PersonalInfo
		info.Name = strings.TrimSpace(*req.Name)
		info.Email = *req.Email
		if req.Role != nil {
			info.Role = *req.Role
		}
		if req.Tagline != nil {
			info.Tagline = *req.Tagline
		}
		if req.Phone != nil {
			info.Phone = *req.Phone
		}
		if req.Github != nil {
			info.Github = *req.Github
		}
		if req.Linkedin != nil {
			info.Linkedin = *req.Linkedin
		}
		if req.ProfileImage != nil {
			info.ProfileImage = *req.ProfileImage
		}

		if err := h.portfolioRepo.Save(portfolio); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, portfolio)
	}
}

type aboutRequest struct {
	AboutMe string `json:"aboutMe"`
}

// updateAbout fully replaces the about section
func (h portfolioHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req aboutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("about", err))
			return
		}

		req.AboutMe = strings.TrimSpace(req.AboutMe)
		if req.AboutMe == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("aboutMe"))
			return
		}

		portfolio, err := h.portfolioRepo.FindOrCreate()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio", "portfolio", err))
			return
		}

		portfolio.AboutMe = req.AboutMe

		if err := h.portfolioRepo.Save(portfolio); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, portfolio)
	}
}

// uploadCV replaces the stored CV: the new file lands first, then the old
// one's bytes are removed best-effort
func (h portfolioHandler) uploadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("cv")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no file uploaded"))
			return
		}
		defer file.Close()

		portfolio, err := h.portfolioRepo.FindOrCreate()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio", "portfolio", err))
			return
		}

		var old *storage.StoredAsset
		if portfolio.CVFile != nil {
			old = &storage.StoredAsset{Filename: portfolio.CVFile.Filename, Path: portfolio.CVFile.Path}
		}

		asset, err := h.store.Replace(r.Context(), old, storage.KindCV, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		portfolio.CVFile = &models.CVFile{
			Filename:   asset.Filename,
			Path:       asset.Path,
			UploadDate: time.Now().UTC(),
		}

		if err := h.portfolioRepo.Save(portfolio); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"message": "CV uploaded successfully",
			"cvFile":  portfolio.CVFile,
		})
	}
}

// checkCV reports whether the referenced CV actually exists in storage.
// Metadata and storage may drift; drift is diagnostic output here, never a
// hard failure.
func (h portfolioHandler) checkCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolio, err := h.portfolioRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio", "portfolio", err))
			return
		}

		if portfolio == nil || portfolio.CVFile == nil {
			h.responder.WriteJSON(w, map[string]any{
				"exists":  false,
				"message": "No CV file in database",
			})
			return
		}

		exists := true
		stream, _, err := h.store.Open(r.Context(), storage.StoredAsset{
			Filename: portfolio.CVFile.Filename,
			Path:     portfolio.CVFile.Path,
		})
		if err != nil {
			exists = false
			if !errs.IsAssetNotFound(err) {
				h.logger.Warn().Err(err).Str("path", portfolio.CVFile.Path).Msg("failed to probe CV file")
			}
		} else {
			stream.Close()
		}

		message := "File exists"
		if !exists {
			message = "File not found in storage"
		}

		h.responder.WriteJSON(w, map[string]any{
			"exists":     exists,
			"filePath":   portfolio.CVFile.Path,
			"filename":   portfolio.CVFile.Filename,
			"uploadDate": portfolio.CVFile.UploadDate,
			"message":    message,
		})
	}
}

// downloadCV streams the stored PDF with attachment disposition
func (h portfolioHandler) downloadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolio, err := h.portfolioRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio", "portfolio", err))
			return
		}

		if portfolio == nil || portfolio.CVFile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("CV not found"))
			return
		}

		stream, size, err := h.store.Open(r.Context(), storage.StoredAsset{
			Filename: portfolio.CVFile.Filename,
			Path:     portfolio.CVFile.Path,
		})
		if err != nil {
			if errs.IsAssetNotFound(err) {
				h.responder.WriteError(w, errs.NewNotFoundError("CV file not found on server"))
				return
			}
			h.responder.WriteError(w, err)
			return
		}
		defer stream.Close()

		filename := fmt.Sprintf("%s_CV.pdf", strings.Join(strings.Fields(portfolio.PersonalInfo.Name), "_"))

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))

		if _, err := io.Copy(w, stream); err != nil {
			h.logger.Error().Err(err).Msg("error streaming CV file")
		}
	}
}
