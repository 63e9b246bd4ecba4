package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
	"github.com/MaherElabd2/price23-sub001/internal/report"
	"github.com/MaherElabd2/price23-sub001/internal/session"
)

type Server struct {
	store    session.Store
	renderer report.Renderer
	tracer   trace.Tracer
}

// NewServer wires the API routes. The renderer may be nil, in which case PDF
// export answers 503 and the markdown and HTML formats still work.
func NewServer(store session.Store, renderer report.Renderer) http.Handler {
	s := &Server{
		store:    store,
		renderer: renderer,
		tracer:   otel.Tracer("httpapi"),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/evaluate", s.handleEvaluate)
	mux.HandleFunc("/v1/sessions", s.handleSessions)
	mux.HandleFunc("/v1/sessions/", s.handleSessionByToken)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return withRequestID(mux)
}

// withRequestID echoes the caller's X-Request-ID or assigns a fresh one, so
// log lines and traces can be correlated across services.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var se *session.Error
	if errors.As(err, &se) {
		writeJSON(w, se.Status, map[string]any{
			"ok": false,
			"error": map[string]any{
				"code":    se.Code,
				"message": se.Message,
			},
		})
		return
	}
	writeJSON(w, 500, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    session.CodeInternal,
			"message": err.Error(),
		},
	})
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte("{}"), nil
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	return blob, nil
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// handleEvaluate is the stateless calculation endpoint: snapshot in,
// evaluation out, nothing stored.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	_, span := s.tracer.Start(r.Context(), "evaluate")
	defer span.End()

	blob, err := readBody(r)
	if err != nil {
		writeError(w, session.NewValidationError("read body: "+err.Error()))
		return
	}
	var snapshot engine.Snapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		writeError(w, session.NewValidationError("invalid json: "+err.Error()))
		return
	}
	if err := ValidateSnapshot(snapshot); err != nil {
		writeError(w, err)
		return
	}

	span.SetAttributes(attribute.Int("products", len(snapshot.Products)))
	eval := engine.Evaluate(snapshot)
	writeJSON(w, 200, map[string]any{"ok": true, "evaluation": eval})
}

type sessionRequest struct {
	Name     string          `json:"name"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

// sessionSummary is the list view: no snapshot or evaluation payload.
type sessionSummary struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Products  int    `json:"products"`
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		blob, err := readBody(r)
		if err != nil {
			writeError(w, session.NewValidationError("read body: "+err.Error()))
			return
		}
		var req sessionRequest
		if err := json.Unmarshal(blob, &req); err != nil {
			writeError(w, session.NewValidationError("invalid json: "+err.Error()))
			return
		}
		if err := ValidateSnapshot(req.Snapshot); err != nil {
			writeError(w, err)
			return
		}

		eval := engine.Evaluate(req.Snapshot)
		sess, err := s.store.Create(req.Name, req.Snapshot, &eval)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 201, map[string]any{"ok": true, "session": sess})
	case http.MethodGet:
		sessions, err := s.store.List()
		if err != nil {
			writeError(w, err)
			return
		}
		summaries := make([]sessionSummary, 0, len(sessions))
		for _, sess := range sessions {
			summaries = append(summaries, sessionSummary{
				Token:     sess.Token,
				Name:      sess.Name,
				CreatedAt: sess.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				UpdatedAt: sess.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Products:  len(sess.Snapshot.Products),
			})
		}
		writeJSON(w, 200, map[string]any{"sessions": summaries})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSessionByToken(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/sessions/")
	token, sub, _ := strings.Cut(rest, "/")
	if token == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if sub == "report" {
		s.handleReport(w, r, token)
		return
	}
	if sub != "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		sess, err := s.store.Get(token)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true, "session": sess})
	case http.MethodPut:
		blob, err := readBody(r)
		if err != nil {
			writeError(w, session.NewValidationError("read body: "+err.Error()))
			return
		}
		var req sessionRequest
		if err := json.Unmarshal(blob, &req); err != nil {
			writeError(w, session.NewValidationError("invalid json: "+err.Error()))
			return
		}
		if err := ValidateSnapshot(req.Snapshot); err != nil {
			writeError(w, err)
			return
		}

		eval := engine.Evaluate(req.Snapshot)
		sess, err := s.store.Update(token, req.Name, req.Snapshot, &eval)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true, "session": sess})
	case http.MethodDelete:
		if err := s.store.Delete(token); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, token string) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	ctx, span := s.tracer.Start(r.Context(), "report")
	defer span.End()

	lang := report.Lang(strings.TrimSpace(r.URL.Query().Get("lang")))
	if lang == "" {
		lang = report.LangEnglish
	}
	if !lang.IsValid() {
		writeError(w, session.NewValidationError("lang must be en or ar"))
		return
	}
	format := strings.TrimSpace(r.URL.Query().Get("format"))
	if format == "" {
		format = "md"
	}
	span.SetAttributes(attribute.String("lang", string(lang)), attribute.String("format", format))

	sess, err := s.store.Get(token)
	if err != nil {
		writeError(w, err)
		return
	}
	eval := sess.Evaluation
	if eval == nil {
		fresh := engine.Evaluate(sess.Snapshot)
		eval = &fresh
	}
	markdown := report.BuildMarkdown(sess.Snapshot, *eval, lang)

	switch format {
	case "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, markdown)
	case "html":
		doc, err := report.RenderHTML(markdown, lang)
		if err != nil {
			writeError(w, session.NewInternalError(err.Error()))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, doc)
	case "pdf":
		if s.renderer == nil {
			writeError(w, &session.Error{Code: session.CodeUnavailable, Message: "pdf rendering is not configured", Status: 503})
			return
		}
		doc, err := report.RenderHTML(markdown, lang)
		if err != nil {
			writeError(w, session.NewInternalError(err.Error()))
			return
		}
		pdf, err := s.renderPDF(ctx, doc)
		if err != nil {
			writeError(w, session.NewInternalError("render pdf: "+err.Error()))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="pricing-report.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	default:
		writeError(w, session.NewValidationError("format must be md, html or pdf"))
	}
}

func (s *Server) renderPDF(ctx context.Context, htmlDoc string) ([]byte, error) {
	_, span := s.tracer.Start(ctx, "render_pdf")
	defer span.End()
	return s.renderer.Render(ctx, htmlDoc)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, 200, map[string]any{"ok": true})
}
