// Package server exposes the webhook endpoints the mail automation calls:
// draft submission, weekly prompt generation, and manual coaching.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sagarmenon/writing-coach-agent/coach"
	"github.com/sagarmenon/writing-coach-agent/config"
	"github.com/sagarmenon/writing-coach-agent/render"
)

type Server struct {
	orc    *coach.Orchestrator
	cfg    config.Config
	logger *zap.Logger
}

func New(orc *coach.Orchestrator, cfg config.Config, logger *zap.Logger) (*Server, error) {
	if orc == nil {
		return nil, errors.New("orchestrator required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{orc: orc, cfg: cfg, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/receive-draft", s.handleReceiveDraft).Methods(http.MethodPost)
	r.HandleFunc("/send-weekly", s.handleSendWeekly).Methods(http.MethodPost)
	r.HandleFunc("/custom-prompt", s.handleCustomPrompt).Methods(http.MethodPost)
	return s.logMiddleware(r)
}

// --- Handlers ---

type receiveDraftReq struct {
	Body    string `json:"body"`
	From    string `json:"from"`
	Subject string `json:"subject"`
}

type receiveDraftResp struct {
	Subject           string `json:"subject"`
	Body              string `json:"body"`
	WordCountReceived int    `json:"word_count_received"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "coach is running"})
}

func (s *Server) handleReceiveDraft(w http.ResponseWriter, r *http.Request) {
	var req receiveDraftReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "no data received")
		return
	}
	if !s.senderAllowed(req.From) {
		writeError(w, http.StatusForbidden, "unauthorized sender")
		return
	}

	text := strings.TrimSpace(req.Body)
	wc := len(strings.Fields(text))

	if coach.IsDraft(text) {
		history := s.orc.History(r.Context())
		verdict, err := s.orc.Evaluate(r.Context(), text, "", history)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		doc, err := render.Document(verdict.Feedback, verdict.Scorecard, nil)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// Enrichment runs detached: its outcome never touches this
		// response, and it outlives the request (fresh context).
		meta := coach.DraftMeta{
			Date:  time.Now().Format("2006-01-02"),
			Title: req.Subject,
		}
		coach.Detach(s.logger, "enrich", func() {
			s.orc.EnrichAndPersist(context.Background(), verdict, meta)
		})

		writeJSON(w, http.StatusOK, receiveDraftResp{
			Subject:           "Re: " + req.Subject + " — Coach Feedback",
			Body:              doc,
			WordCountReceived: wc,
		})
		return
	}

	reply, err := s.orc.ExcuseResponse(r.Context(), text)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	doc, err := render.Document(reply, nil, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, receiveDraftResp{
		Subject:           "Re: " + req.Subject + " — No draft.",
		Body:              doc,
		WordCountReceived: wc,
	})
}

type sendWeeklyReq struct {
	WeekNumber int `json:"week_number"`
}

type sendWeeklyResp struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	To         string `json:"to"`
	WeekNumber int    `json:"week_number"`
}

func (s *Server) handleSendWeekly(w http.ResponseWriter, r *http.Request) {
	var req sendWeeklyReq
	// Body is optional; an empty or invalid one means week 1.
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.WeekNumber < 1 {
		req.WeekNumber = 1
	}

	history := s.orc.History(r.Context())
	subject, body, err := s.orc.WeeklyPrompt(r.Context(), req.WeekNumber, history)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	doc, err := render.Document(body, nil, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sendWeeklyResp{
		Subject:    subject,
		Body:       doc,
		To:         s.cfg.AllowedSender,
		WeekNumber: req.WeekNumber,
	})
}

type customPromptReq struct {
	Draft string `json:"draft"`
	Note  string `json:"note"`
}

func (s *Server) handleCustomPrompt(w http.ResponseWriter, r *http.Request) {
	var req customPromptReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "no data received")
		return
	}
	if strings.TrimSpace(req.Draft) == "" {
		writeError(w, http.StatusBadRequest, "no draft provided")
		return
	}

	history := s.orc.History(r.Context())
	verdict, err := s.orc.Evaluate(r.Context(), req.Draft, req.Note, history)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	doc, err := render.Document(verdict.Feedback, verdict.Scorecard, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"feedback": doc})
}

// --- Helpers ---

// senderAllowed applies the allow-list: the configured identity must appear
// in the claimed sender, case-insensitively. Empty config disables the gate.
func (s *Server) senderAllowed(from string) bool {
	allowed := s.cfg.AllowedSender
	if allowed == "" {
		return true
	}
	return strings.Contains(strings.ToLower(from), strings.ToLower(allowed))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}
