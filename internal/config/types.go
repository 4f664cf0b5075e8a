package config

// ServerConfig contains the management API server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// APIKey is a shared secret clients send as X-API-Key. Empty disables
	// authentication. Treated as a secret and never returned by the API.
	APIKey string `yaml:"api_key"`
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig contains import pipeline settings.
type ImportConfig struct {
	// ChunkSize is the number of lines parsed between cancellation checks.
	ChunkSize int `yaml:"chunk_size"`
	// AllowDirectMembers decides whether a pwwn zone member that matches no
	// alias resolves as a direct-WWPN member (true) or stays unresolved
	// (false). This is the server-wide default; requests may override it.
	AllowDirectMembers *bool `yaml:"allow_direct_members"`
	// MaxUploadBytes bounds the total size of one import request body.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level"`
	Structured       bool              `yaml:"structured"`
	StructuredFormat string            `yaml:"structured_format"`
	IncludePID       bool              `yaml:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Import   ImportConfig   `yaml:"import"`
	Logging  LoggingConfig  `yaml:"logging"`
}
