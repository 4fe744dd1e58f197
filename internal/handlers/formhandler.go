package handlers

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"formsubmit/internal/dtos"
	"formsubmit/internal/models"
	"formsubmit/internal/services"
	"formsubmit/internal/uploads"
	"formsubmit/internal/validation"
)

type FormHandler struct {
	Service *services.SubmissionService
	Uploads *uploads.DiskStore
	// Strict makes ingestion re-run the shared rule table and reject
	// invalid forms instead of trusting the client.
	Strict bool
}

func NewFormHandler(svc *services.SubmissionService, files *uploads.DiskStore, strict bool) *FormHandler {
	return &FormHandler{Service: svc, Uploads: files, Strict: strict}
}

// CreateSubmission is the POST /api/forms endpoint. It accepts the scalar
// fields as text parts plus at most one "resume" file part, persists the
// record, and answers 201 with the new id.
func (h *FormHandler) CreateSubmission(c *gin.Context) {
	// Missing scalar fields default to empty strings; PostForm does that.
	sub := &models.Submission{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Contact:   c.PostForm("contact"),
		Gender:    c.PostForm("gender"),
		Subjects:  parseSubjects(c.PostForm("subjects")),
		URL:       c.PostForm("url"),
		Select:    c.PostForm("select"),
		About:     c.PostForm("about"),
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		fh = nil
	}

	if h.Strict {
		if msg := h.strictCheck(sub, fh); msg != "" {
			c.JSON(http.StatusBadRequest, dtos.SubmitResponse{Success: false, Message: msg})
			return
		}
	}

	if fh != nil {
		ref, err := h.Uploads.Save(fh)
		if err != nil {
			log.Printf("resume upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, dtos.SubmitResponse{Success: false, Message: err.Error()})
			return
		}
		sub.Resume = ref
	}

	created, err := h.Service.Create(c.Request.Context(), sub)
	if err != nil {
		log.Printf("submission insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, dtos.SubmitResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dtos.SubmitResponse{Success: true, ID: created.ID})
}

// ListSubmissions is the GET /api/forms endpoint: up to 100 records,
// newest first.
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.Service.ListRecent(c.Request.Context())
	if err != nil {
		log.Printf("submission listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	c.JSON(http.StatusOK, subs)
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseSubjects decodes the JSON-encoded subjects part. Absent or
// malformed payloads fall back to an empty mapping; the client is the
// enforcer of the three-key shape.
func parseSubjects(raw string) models.SubjectSet {
	subjects := models.SubjectSet{}
	if raw == "" {
		return subjects
	}
	if err := json.Unmarshal([]byte(raw), &subjects); err != nil {
		return models.SubjectSet{}
	}
	return subjects
}

func (h *FormHandler) strictCheck(sub *models.Submission, fh *multipart.FileHeader) string {
	values := validation.Values{
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Contact:   sub.Contact,
		Gender:    sub.Gender,
		Subjects:  sub.Subjects,
		URL:       sub.URL,
		Select:    sub.Select,
		About:     sub.About,
	}
	if fh != nil {
		values.Resume = &validation.FileMeta{
			Name:     fh.Filename,
			Size:     fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
		}
	}

	errs, ok := validation.All(values)
	if ok {
		return ""
	}
	fields := make([]string, 0, len(errs))
	for name, msg := range errs {
		if msg != "" {
			fields = append(fields, name+": "+msg)
		}
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, "; ")
}
