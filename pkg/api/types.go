package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ChunkInfo is one row of a chunk listing
type ChunkInfo struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

// MessageResponse is the payload returned by the decode endpoint
type MessageResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port       int
	Bind       string
	APIKey     string
	ArchiveDir string // Optional: when set, operations are recorded to the archive
}
