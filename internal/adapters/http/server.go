// Package http exposes the tree engine as a stateless JSON API for the
// editor UI. Trees travel in the request and response bodies; the server
// holds no document state of its own.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwellhq/canopy/pkg/blocks"
	"github.com/inkwellhq/canopy/pkg/document"
)

// Engine defines the tree operations the API dispatches to.
type Engine interface {
	Insert(tree *document.Node, parentID string, child *document.Node, position int) (*document.Node, error)
	Remove(tree *document.Node, id string) (*document.Node, error)
	Move(tree *document.Node, id, newParentID string, position int) (*document.Node, error)
	Duplicate(tree *document.Node, id string) (*document.Node, error)
	Validate(tree *document.Node) []string
	EffectiveAttributes(tree *document.Node, id string) blocks.AttributeBag
	RedistributeGroupColumns(tree *document.Node, groupID string) *document.Node
	RedistributeAfterMove(tree *document.Node, movedID, sourceParentID, targetParentID string) *document.Node
}

// Server wires the engine into a chi router.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// NewHandler creates the HTTP handler. When gatherer is non-nil a
// Prometheus /metrics endpoint is mounted alongside the API.
func NewHandler(engine Engine, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Post("/validate", s.validate)
	r.Post("/attributes/effective", s.effectiveAttributes)
	r.Post("/tree/insert", s.insert)
	r.Post("/tree/remove", s.remove)
	r.Post("/tree/move", s.move)
	r.Post("/tree/duplicate", s.duplicate)
	r.Post("/layout/group", s.redistributeGroup)
	r.Post("/layout/after-move", s.redistributeAfterMove)

	return r
}

type treeRequest struct {
	EmailTree      *document.Node `json:"emailTree"`
	Node           *document.Node `json:"node,omitempty"`
	NodeID         string         `json:"nodeId,omitempty"`
	ParentID       string         `json:"parentId,omitempty"`
	NewParentID    string         `json:"newParentId,omitempty"`
	GroupID        string         `json:"groupId,omitempty"`
	SourceParentID string         `json:"sourceParentId,omitempty"`
	TargetParentID string         `json:"targetParentId,omitempty"`
	Position       int            `json:"position"`
}

type treeResponse struct {
	EmailTree *document.Node `json:"emailTree"`
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	violations := s.engine.Validate(req.EmailTree)
	if violations == nil {
		violations = []string{}
	}
	s.respond(w, http.StatusOK, map[string]any{"violations": violations})
}

func (s *Server) effectiveAttributes(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	attrs := s.engine.EffectiveAttributes(req.EmailTree, req.NodeID)
	if attrs == nil {
		http.Error(w, "node not found", http.StatusNotFound)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"attributes": attrs})
}

func (s *Server) insert(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if req.Node == nil {
		http.Error(w, "missing node", http.StatusBadRequest)
		return
	}
	next, err := s.engine.Insert(req.EmailTree, req.ParentID, req.Node, req.Position)
	s.respondTree(w, next, err)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	next, err := s.engine.Remove(req.EmailTree, req.NodeID)
	s.respondTree(w, next, err)
}

func (s *Server) move(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	next, err := s.engine.Move(req.EmailTree, req.NodeID, req.NewParentID, req.Position)
	s.respondTree(w, next, err)
}

func (s *Server) duplicate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	next, err := s.engine.Duplicate(req.EmailTree, req.NodeID)
	s.respondTree(w, next, err)
}

func (s *Server) redistributeGroup(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	s.respondTree(w, s.engine.RedistributeGroupColumns(req.EmailTree, req.GroupID), nil)
}

func (s *Server) redistributeAfterMove(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	next := s.engine.RedistributeAfterMove(req.EmailTree, req.NodeID, req.SourceParentID, req.TargetParentID)
	s.respondTree(w, next, nil)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*treeRequest, bool) {
	var req treeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if req.EmailTree == nil {
		http.Error(w, "missing emailTree", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (s *Server) respondTree(w http.ResponseWriter, tree *document.Node, err error) {
	if err != nil {
		switch {
		case errors.Is(err, document.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, document.ErrIllegalPlacement), errors.Is(err, document.ErrRootRemoval):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	s.respond(w, http.StatusOK, treeResponse{EmailTree: tree})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
