package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/muninnlabs/muninn/pkg/archive"
	"github.com/muninnlabs/muninn/pkg/codec"
	"github.com/muninnlabs/muninn/pkg/png"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
	archive *archive.Archive // nil when archiving is disabled
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics, arc *archive.Archive) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
		archive: arc,
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// readPng reads and parses the request body as a PNG. On failure it
// writes the error response and returns nil.
func (s *Server) readPng(w http.ResponseWriter, r *http.Request) *png.Png {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil
	}
	if s.metrics != nil {
		s.metrics.RecordPNGBytes(len(body))
	}

	p, err := png.Parse(body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, codec.ErrBadSignature) {
			status = http.StatusUnsupportedMediaType
		}
		sendError(w, err.Error(), status)
		return nil
	}
	return p
}

// handleEncode appends a hidden-message chunk to the uploaded PNG and
// returns the rewritten file.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	typeCode := r.URL.Query().Get("type")
	message := r.URL.Query().Get("message")
	if typeCode == "" || message == "" {
		s.recordOp("encode", false, start)
		sendError(w, "Query parameters 'type' and 'message' are required", http.StatusBadRequest)
		return
	}

	p := s.readPng(w, r)
	if p == nil {
		s.recordOp("encode", false, start)
		return
	}

	chunk, err := codec.NewTextChunk(typeCode, message)
	if err != nil {
		s.recordOp("encode", false, start)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.Append(chunk)

	s.archiveEntry(archive.Entry{
		TypeCode:  typeCode,
		Message:   message,
		Operation: archive.OpEncode,
	})
	s.recordOp("encode", true, start)
	sendPNG(w, p.Encode())
}

// handleDecode extracts the hidden message stored under the given type
// code in the uploaded PNG.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	typeCode := r.URL.Query().Get("type")
	if typeCode == "" {
		s.recordOp("decode", false, start)
		sendError(w, "Query parameter 'type' is required", http.StatusBadRequest)
		return
	}

	p := s.readPng(w, r)
	if p == nil {
		s.recordOp("decode", false, start)
		return
	}

	chunk := p.ChunkByType(typeCode)
	if chunk == nil {
		s.recordOp("decode", false, start)
		sendError(w, "No chunk with type "+typeCode, http.StatusNotFound)
		return
	}

	text, err := chunk.Text()
	if err != nil {
		s.recordOp("decode", false, start)
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.archiveEntry(archive.Entry{
		TypeCode:  typeCode,
		Message:   text,
		Operation: archive.OpDecode,
	})
	s.recordOp("decode", true, start)
	sendSuccess(w, MessageResponse{Type: typeCode, Message: text})
}

// handleRemove strips the first chunk of the given type from the
// uploaded PNG and returns the rewritten file.
func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	typeCode := r.URL.Query().Get("type")
	if typeCode == "" {
		s.recordOp("remove", false, start)
		sendError(w, "Query parameter 'type' is required", http.StatusBadRequest)
		return
	}

	p := s.readPng(w, r)
	if p == nil {
		s.recordOp("remove", false, start)
		return
	}

	if _, err := p.RemoveByType(typeCode); err != nil {
		s.recordOp("remove", false, start)
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}

	s.archiveEntry(archive.Entry{
		TypeCode:  typeCode,
		Operation: archive.OpRemove,
	})
	s.recordOp("remove", true, start)
	sendPNG(w, p.Encode())
}

// handleChunks lists the chunks of the uploaded PNG.
func (s *Server) handleChunks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	p := s.readPng(w, r)
	if p == nil {
		s.recordOp("chunks", false, start)
		return
	}

	infos := make([]ChunkInfo, 0, len(p.Chunks()))
	for i, c := range p.Chunks() {
		infos = append(infos, ChunkInfo{
			Index:      i,
			Type:       c.Type().String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   c.Type().IsCritical(),
			Public:     c.Type().IsPublic(),
			SafeToCopy: c.Type().IsSafeToCopy(),
		})
	}

	s.recordOp("chunks", true, start)
	sendSuccess(w, infos)
}

// handleHistory lists archived message operations.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		sendError(w, "Archive is not enabled", http.StatusNotFound)
		return
	}

	entries, err := s.archive.List()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, entries)
}

func (s *Server) recordOp(operation string, success bool, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordPNGOperation(operation, success, time.Since(start))
	}
}

func (s *Server) archiveEntry(e archive.Entry) {
	if s.archive == nil {
		return
	}
	if _, err := s.archive.Record(e); err != nil {
		// Archiving is best-effort; the PNG operation already succeeded.
		log.Printf("archive record failed: %v", err)
	}
}
