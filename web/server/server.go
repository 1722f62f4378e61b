package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/log"
	"github.com/df07/go-raytracer-core/pkg/scene"
	"github.com/df07/go-raytracer-core/pkg/serialization"
)

var logger = log.New("server")

// Server answers scene listing, export and inspection requests over HTTP
type Server struct {
	port     int
	sceneDir string
}

// NewServer creates a new web server. Scene files are looked up in sceneDir.
func NewServer(port int, sceneDir string) *Server {
	return &Server{port: port, sceneDir: sceneDir}
}

// StatsResponse lists the node counts of a scene
type StatsResponse struct {
	Scene      string          `json:"scene"`
	Counts     map[string]int  `json:"counts"`
	References int             `json:"references"`
	Total      int             `json:"total"`
	Bounds     *BoundsResponse `json:"bounds,omitempty"`
}

// BoundsResponse is the extent of the bounded part of a scene
type BoundsResponse struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// Handler returns the routes served by s
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	groups, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// handleScene returns a scene in its serialized form
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	name := sceneParam(r.URL.Query())
	sc, err := s.loadScene(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := serialization.Serialize(sc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, text)
}

// handleStats returns the node counts of a scene
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	name := sceneParam(r.URL.Query())
	sc, err := s.loadScene(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := scene.CollectStats(sc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := StatsResponse{
		Scene:      name,
		Counts:     stats.Counts,
		References: stats.References,
		Total:      stats.Total(),
	}
	if stats.Bounded {
		response.Bounds = &BoundsResponse{
			Min: [3]float64{stats.Bounds.Min.X, stats.Bounds.Min.Y, stats.Bounds.Min.Z},
			Max: [3]float64{stats.Bounds.Max.X, stats.Bounds.Max.Y, stats.Bounds.Max.Z},
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// sceneParam reads the scene name, defaulting to the Cornell box
func sceneParam(values url.Values) string {
	if name := values.Get("scene"); name != "" {
		return name
	}
	return "cornell-box"
}

// loadScene builds a built-in scene, or reads "json:<name>" from the scene directory
func (s *Server) loadScene(name string) (*scene.Scene, error) {
	file, ok := strings.CutPrefix(name, "json:")
	if !ok {
		return scene.NewBuiltinScene(name, core.NewIDGenerator())
	}
	if file == "" || file != filepath.Base(file) {
		return nil, fmt.Errorf("invalid scene file name %q", file)
	}

	path := filepath.Join(s.sceneDir, file+".json")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger.Infof("loading scene file %s", path)
	return serialization.Decode(f, serialization.DefaultDeserializeOptions())
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
