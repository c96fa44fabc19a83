package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/livalex/egraph/pkg/eg"
	"github.com/livalex/egraph/pkg/eg/rules"
	egerrors "github.com/livalex/egraph/pkg/errors"
	"github.com/livalex/egraph/pkg/store"
)

type notationRequest struct {
	Notation string `json:"notation"`
}

type notationResponse struct {
	Notation string `json:"notation"`
	Atoms    int    `json:"atoms"`
	Cuts     int    `json:"cuts"`
	Depth    int    `json:"depth"`
}

type sitesResponse struct {
	Rule  string   `json:"rule"`
	Sites []string `json:"sites"`
}

type applyRequest struct {
	Notation string `json:"notation"`
	Site     string `json:"site"`
}

type graphRequest struct {
	Name     string `json:"name"`
	Notation string `json:"notation"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// handleParse canonicalizes the posted notation.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req notationRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := eg.Parse(req.Notation)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, graphResponse(g))
}

// handleSites enumerates application sites of a rule in the posted graph.
func (s *Server) handleSites(w http.ResponseWriter, r *http.Request) {
	rule, err := rules.ParseRule(chi.URLParam(r, "rule"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req notationRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := eg.Parse(req.Notation)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sites := rule.Sites(g)
	out := make([]string, len(sites))
	for i, p := range sites {
		out[i] = p.String()
	}
	s.writeJSON(w, http.StatusOK, sitesResponse{Rule: string(rule), Sites: out})
}

// handleApply applies a rule at the posted site.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	rule, err := rules.ParseRule(chi.URLParam(r, "rule"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req applyRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := eg.Parse(req.Notation)
	if err != nil {
		s.writeError(w, err)
		return
	}
	path, err := eg.ParsePath(req.Site)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := rule.Apply(g, path)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, graphResponse(result.Canonicalize()))
}

// handleListGraphs lists stored graphs.
func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	s.writeJSON(w, http.StatusOK, recs)
}

// handleSaveGraph stores the posted graph under a name, canonicalized.
func (s *Server) handleSaveGraph(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := egerrors.ValidateGraphName(req.Name); err != nil {
		s.writeError(w, err)
		return
	}
	g, err := eg.Parse(req.Notation)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rec, err := s.store.Save(r.Context(), req.Name, g.String())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, rec)
}

// handleGetGraph returns one stored graph.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleDeleteGraph removes one stored graph.
func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func graphResponse(g *eg.Graph) notationResponse {
	return notationResponse{
		Notation: g.String(),
		Atoms:    g.CountAtoms(),
		Cuts:     g.CountCuts(),
		Depth:    g.Depth(),
	}
}

// decode reads the JSON request body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, egerrors.Wrap(egerrors.ErrCodeInvalidInput, err, "decode request body"))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps error codes onto HTTP statuses and writes a JSON error.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := egerrors.GetCode(err)

	switch {
	case errors.Is(err, store.ErrNotFound), code == egerrors.ErrCodeGraphNotFound, code == egerrors.ErrCodeNotFound:
		status = http.StatusNotFound
		if code == "" {
			code = egerrors.ErrCodeGraphNotFound
		}
	case code == egerrors.ErrCodeMalformedInput,
		code == egerrors.ErrCodeInvalidPath,
		code == egerrors.ErrCodeInvalidRule,
		code == egerrors.ErrCodeInvalidName,
		code == egerrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	default:
		if code == "" {
			code = egerrors.ErrCodeInternal
		}
	}

	s.writeJSON(w, status, errorResponse{Error: egerrors.UserMessage(err), Code: string(code)})
}
