package web

import (
	"encoding/json"
	"net/http"

	"github.com/ehrlich-b/fto/internal/ften"
	"github.com/ehrlich-b/fto/internal/fto"
	"github.com/ehrlich-b/fto/internal/render"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
	State    string `json:"state,omitempty"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Steps    int    `json:"steps"`
	Time     string `json:"time"`
	State    string `json:"state"`
}

type ScrambleResponse struct {
	State string `json:"state"`
}

type RenderRequest struct {
	Scramble string `json:"scramble,omitempty"`
	State    string `json:"state,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// startingState resolves a request's state field (FTEN) and scramble
// into a coordinate state. An empty state means solved.
func (s *Server) startingState(stateFTEN, scramble string) (fto.CoordState, error) {
	state := fto.SolvedCoordState()

	if stateFTEN != "" {
		raw, err := ften.ParseFTEN(stateFTEN)
		if err != nil {
			return state, err
		}
		state = raw.ToCoords()
	}

	if scramble != "" {
		turns, err := fto.ParseSequence(scramble)
		if err != nil {
			return state, err
		}
		state.ApplySequence(s.tables, turns)
	}
	return state, nil
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	state, err := s.startingState(req.State, req.Scramble)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.solver.Solve(state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	state.ApplySequence(s.tables, result.Solution)

	writeJSON(w, SolveResponse{
		Solution: fto.FormatSequence(result.Solution),
		Steps:    result.Steps,
		Time:     result.Duration.String(),
		State:    ften.GenerateFTEN(state.ToRaw()),
	})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, ScrambleResponse{State: ften.GenerateFTEN(fto.RandomRawState())})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	state, err := s.startingState(req.State, req.Scramble)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(render.SVG(state.ToRaw())))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}
