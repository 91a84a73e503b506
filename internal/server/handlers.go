package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/mindwell/mindtext"
)

// textRequest is the body accepted by the single-text endpoints.
type textRequest struct {
	Text string `json:"text"`
}

// frequencyRequest is the body accepted by the word-frequency endpoint.
type frequencyRequest struct {
	Texts    []string `json:"texts"`
	Polarity string   `json:"polarity"`
}

// BadRequestError is returned for input the server refuses to analyze.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// parseJSONBody parses JSON request body into target
func parseJSONBody(r *http.Request, target any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &BadRequestError{Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)}
		}
		return &BadRequestError{Message: "failed to read request body"}
	}
	defer r.Body.Close()

	if len(body) == 0 {
		return &BadRequestError{Message: "request body is empty"}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &BadRequestError{Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// validateText rejects blank input and input longer than the configured limit.
func (s *Server) validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &BadRequestError{Message: "text is required"}
	}
	if n := utf8.RuneCountInString(text); n > s.config.MaxTextLength {
		return &BadRequestError{Message: fmt.Sprintf("text is %d characters, limit is %d", n, s.config.MaxTextLength)}
	}
	return nil
}

// readText decodes a textRequest and validates its text, writing the error
// response itself on failure.
func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req textRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return "", false
	}
	if err := s.validateText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_text", err.Error())
		return "", false
	}
	return req.Text, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]any{
		"status": "healthy",
		"uptime": time.Since(s.startTime).String(),
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	lang := mindtext.DetectLanguage(text)
	writeSuccess(w, map[string]any{
		"language": lang,
		"name":     mindtext.LanguageName(lang),
	})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	writeSuccess(w, s.sentiment.Analyze(text))
}

func (s *Server) handleSentences(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	sentences, err := s.sentiment.AnalyzeSentences(text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeSuccess(w, sentences)
}

func (s *Server) handleMentalHealth(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	writeSuccess(w, s.mentalHealth.Analyze(text))
}

func (s *Server) handleWordFrequency(w http.ResponseWriter, r *http.Request) {
	var req frequencyRequest
	if err := parseJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	for i, text := range req.Texts {
		if err := s.validateText(text); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_text", fmt.Sprintf("texts[%d]: %v", i, err))
			return
		}
	}
	polarity, err := mindtext.ParsePolarity(req.Polarity)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_polarity", err.Error())
		return
	}
	writeSuccess(w, mindtext.GetWordFrequency(req.Texts, polarity))
}

func (s *Server) handleReviewWordFrequency(w http.ResponseWriter, r *http.Request) {
	polarity, err := mindtext.ParsePolarity(chi.URLParam(r, "polarity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_polarity", err.Error())
		return
	}
	writeSuccess(w, mindtext.ReviewWordFrequency(polarity))
}

func (s *Server) handleDatasetOverview(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, mindtext.DatasetOverview())
}

func (s *Server) handleCategoryDistribution(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, mindtext.CategoryDistribution())
}

func (s *Server) handleLanguageDistribution(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, mindtext.LanguageDistribution())
}

func (s *Server) handleCrisisResources(w http.ResponseWriter, r *http.Request) {
	requested := mindtext.Language(strings.ToLower(chi.URLParam(r, "lang")))
	served, resources := mindtext.CrisisResourcesFor(requested)
	writeSuccess(w, map[string]any{
		"language":  served,
		"requested": requested,
		"resources": resources,
	})
}

func (s *Server) handleModelAccuracy(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]float64{
		"mentalHealth": mindtext.ModelAccuracy(),
		"sentiment":    mindtext.SentimentModelAccuracy(),
	})
}
