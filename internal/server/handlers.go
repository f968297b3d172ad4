package server

import (
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/orozcop9/TailorMyResume-AI/internal/types"
)

// OptimizeResponse is the serialized OptimizationResult envelope for
// POST /optimize. On failure only Success and Error are populated.
type OptimizeResponse struct {
	Success          bool                      `json:"success"`
	OriginalContent  string                    `json:"originalContent,omitempty"`
	OptimizedContent string                    `json:"optimizedContent,omitempty"`
	Improvements     *types.ImprovementMetrics `json:"improvements,omitempty"`
	KeyChanges       []string                  `json:"keyChanges,omitempty"`
	Error            string                    `json:"error,omitempty"`
}

// optimizeRequest carries the validated multipart fields.
type optimizeRequest struct {
	JobDescription string `validate:"required"`
	MediaType      string `validate:"required,oneof=application/pdf application/vnd.openxmlformats-officedocument.wordprocessingml.document"`
}

// handleOptimize runs the optimization pipeline on an uploaded resume.
// The job description is validated before any file bytes are parsed.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	// Reserve headroom for the multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request or file too large")
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("jobDescription"))
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "Both job description and resume file are required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Both job description and resume file are required")
		return
	}
	defer func() { _ = file.Close() }()

	mediaType := sniffMediaType(header.Header.Get("Content-Type"), header.Filename)

	req := optimizeRequest{JobDescription: jobDescription, MediaType: mediaType}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Unsupported file type: only PDF and DOCX resumes are accepted")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		log.Printf("[optimize %s] failed to read upload: %v", requestID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read resume file")
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		s.errorResponse(w, http.StatusBadRequest, "Resume file exceeds the upload size limit")
		return
	}

	raw := types.RawDocument{Data: data, MediaType: types.MediaType(mediaType)}

	log.Printf("[optimize %s] file=%q type=%s bytes=%d", requestID, header.Filename, mediaType, len(data))

	result, err := s.pipeline.Run(r.Context(), raw, jobDescription)
	if err != nil {
		log.Printf("[optimize %s] pipeline failed: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, OptimizeResponse{
		Success:          true,
		OriginalContent:  result.OriginalContent,
		OptimizedContent: result.OptimizedContent,
		Improvements:     &result.Improvements,
		KeyChanges:       result.KeyChanges,
	})
}

// errorResponse writes a failure envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, OptimizeResponse{Success: false, Error: message})
}

// sniffMediaType resolves the upload's media type from the declared
// Content-Type, falling back to the file extension. Legacy .doc maps to
// its own type so validation rejects it explicitly.
func sniffMediaType(declared, filename string) string {
	if declared != "" {
		if parsed, _, err := mime.ParseMediaType(declared); err == nil && parsed != "application/octet-stream" {
			return parsed
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return string(types.MediaPDF)
	case ".docx":
		return string(types.MediaDOCX)
	case ".doc":
		return "application/msword"
	default:
		return ""
	}
}
