package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anand7670/portfolio-backend/database"
	"github.com/anand7670/portfolio-backend/errs"
	"github.com/anand7670/portfolio-backend/models"
	"github.com/anand7670/portfolio-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	notify      func(*models.ContactMessage) error
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notify:      services.SendContactNotification,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// submitContact persists a public contact form submission and fires a
// best-effort owner notification. Rate limiting happens upstream in the
// route middleware.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if err := validate.Struct(req); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		message := &models.ContactMessage{
			Name:      req.Name,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
			IPAddress: sourceIP(r),
			Status:    models.ContactStatusNew,
		}

		if err := h.contactRepo.Add(message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact message", "contact message", err))
			return
		}

		// The message is already persisted; a notification failure must not
		// fail the submission.
		if err := h.notify(message); err != nil {
			h.logger.Warn().Err(err).Msg("failed to send contact email notification")
		}

		h.responder.WriteJSON(w, map[string]any{
			"message": "Thank you for your message! I will get back to you soon.",
			"success": true,
		})
	}
}

// paginationMeta describes one page of a listing
type paginationMeta struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// getAllContacts lists messages newest first with pagination metadata
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		if page < 1 {
			page = 1
		}
		limit := queryInt(r, "limit", 10)
		if limit < 1 {
			limit = 10
		}

		messages, total, err := h.contactRepo.FindPage(page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact messages", "contact messages", err))
			return
		}
		if messages == nil {
			messages = []*models.ContactMessage{}
		}

		pages := int((total + int64(limit) - 1) / int64(limit))

		h.responder.WriteJSON(w, map[string]any{
			"contacts": messages,
			"pagination": paginationMeta{
				Current: page,
				Pages:   pages,
				Total:   total,
			},
		})
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// updateContactStatus sets the message status; any recognized value may
// follow any other
func (h contactHandler) updateContactStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseContactID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("status", err))
			return
		}

		if !models.ValidContactStatus(req.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be one of new, read, replied"))
			return
		}

		message, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact message", err))
			return
		}

		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.contactRepo.UpdateStatus(contactID, req.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact message", "contact message", err))
			return
		}

		message.Status = req.Status
		h.responder.WriteJSON(w, message)
	}
}

// deleteContact removes a contact message by ID
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseContactID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact message", "contact message", err))
			return
		}

		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact message", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Contact message deleted successfully",
		})
	}
}

func parseContactID(r *http.Request) (uuid.UUID, error) {
	contactIDStr := chi.URLParam(r, "contactID")
	if contactIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing contactID")
	}

	contactID, err := uuid.Parse(contactIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid contactID")
	}
	return contactID, nil
}

// sourceIP extracts the remote host, falling back to the raw address
func sourceIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return v
}
