package config

import (
	"os"
	"path/filepath"
)

// ConfigInfo describes where a config file lives and whether it exists.
type ConfigInfo struct {
	Path   string
	Exists bool
}

// Manager creates and inspects the user's config file.
type Manager struct {
	confDir string
}

// NewManager creates a manager for the default config directory.
func NewManager() *Manager {
	return &Manager{confDir: DefaultConfigDir()}
}

// NewManagerWithDir creates a manager with a custom directory, for tests.
func NewManagerWithDir(dir string) *Manager {
	return &Manager{confDir: dir}
}

// Info reports the config file location.
func (m *Manager) Info() ConfigInfo {
	path := filepath.Join(m.confDir, ConfigFileName)
	_, err := os.Stat(path)
	return ConfigInfo{Path: path, Exists: err == nil}
}

// Init writes a commented starter config. It refuses to overwrite an
// existing file.
func (m *Manager) Init() error {
	info := m.Info()
	if info.Exists {
		return os.ErrExist
	}
	if err := os.MkdirAll(m.confDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(info.Path, []byte(starterConfig), 0o644)
}

const starterConfig = `# Kairos configuration.
# Environment variables override this file:
#   KAIROS_BACKEND_URL, KAIROS_TOKEN, KAIROS_USER_ID, KAIROS_LOG_LEVEL

[backend]
url = "http://localhost:8787"
# token = ""
user_id = "1"
timeout_seconds = 30

[log]
level = "info"
# dir = "~/.local/state/kairos"

[ui]
default_calendar_color = "#3788d8"
default_task_color = "#64748b"
`
