// Package server hosts the local development server. It is plumbing around
// the engine: it loads a project, runs the pipeline on demand, and serves
// the plain-data results. The engine itself performs no I/O.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/analytics"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/cad"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/corridor"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/placement"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/plan"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/scene2d"
	"github.com/rehmanul/floorplan-pro-clean-sub000/pkg/validation"
)

// Server is the local development server for interactive layout work.
type Server struct {
	projectPath string
	port        int
	logger      *log.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		logger:      log.With("component", "server"),
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	r := mux.NewRouter()

	r.HandleFunc("/api/solve", s.handleSolve).Methods(http.MethodPost)
	r.HandleFunc("/api/validation", s.handleValidation).Methods(http.MethodGet)
	r.HandleFunc("/api/scene", s.handleScene).Methods(http.MethodGet)
	r.HandleFunc("/api/spec", s.handleSpec).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("floorplan server starting", "addr", "http://localhost"+addr, "project", s.projectPath)

	return http.ListenAndServe(addr, r)
}

type solveResponse struct {
	JobID      string              `json:"job_id"`
	Units      []*placement.Unit   `json:"units"`
	Corridors  []corridor.Corridor `json:"corridors"`
	Metrics    analytics.Metrics   `json:"metrics"`
	Validation *validation.Report  `json:"validation"`
}

// solveResult bundles the response with the intermediates the scene
// endpoint needs.
type solveResult struct {
	resp *solveResponse
	spec *plan.LayoutSpec
	fp   *plan.FloorPlan
}

// solveProject runs the pipeline over the loaded project. Params posted in
// the request body override the project's own. On schema failure the
// result carries only the validation report.
func (s *Server) solveProject(override *plan.Params) (*solveResult, error) {
	layoutSpec, err := plan.LoadProject(s.projectPath)
	if err != nil {
		return nil, err
	}
	report := validation.ValidateSchema(layoutSpec)
	if !report.Valid {
		return &solveResult{resp: &solveResponse{Validation: report}, spec: layoutSpec}, nil
	}

	params := layoutSpec.Params
	if override != nil {
		params = *override
	}

	fp := cad.Reconstruct(layoutSpec.Entities)
	placed, err := placement.Generate(fp, layoutSpec.Distribution, params)
	if err != nil {
		return nil, err
	}
	report.Merge(placed.Report)

	routed := corridor.Generate(fp, placed.Units, params)
	report.Merge(routed.Report)

	return &solveResult{
		resp: &solveResponse{
			JobID:      uuid.NewString(),
			Units:      placed.Units,
			Corridors:  routed.Corridors,
			Metrics:    analytics.Summarize(fp, placed, routed.Corridors),
			Validation: report,
		},
		spec: layoutSpec,
		fp:   fp,
	}, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var override *plan.Params
	if r.Body != nil && r.ContentLength > 0 {
		var p plan.Params
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding params: %w", err))
			return
		}
		override = &p
	}

	res, err := s.solveProject(override)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.logger.Info("solve complete", "job", res.resp.JobID, "units", len(res.resp.Units), "corridors", len(res.resp.Corridors))
	s.writeJSON(w, res.resp)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	layoutSpec, err := plan.LoadProject(s.projectPath)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, validation.ValidateSchema(layoutSpec))
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	res, err := s.solveProject(nil)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if res.fp == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(res.resp.Validation)
		return
	}
	s.writeJSON(w, scene2d.Assemble(res.spec.Name, res.fp, res.resp.Units, res.resp.Corridors))
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	layoutSpec, err := plan.LoadProject(s.projectPath)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, layoutSpec)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.logger.Error("request failed", "err", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
