package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ehrlich-b/fto/internal/fto"
)

type Server struct {
	router *mux.Router
	tables *fto.MoveTables
	solver fto.Solver
}

// NewServer builds a server over prebuilt move tables and a solver.
func NewServer(tables *fto.MoveTables, solver fto.Solver) *Server {
	s := &Server{
		router: mux.NewRouter(),
		tables: tables,
		solver: solver,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API routes
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/scramble", s.handleScramble).Methods("GET")
	api.HandleFunc("/render", s.handleRender).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
