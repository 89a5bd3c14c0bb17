package monitors

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"waterdeck/internal/domain"
)

// ErrUnknownFormat is returned for catalog files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown catalog format")

// catalogFile is the on-disk layout of a monitor catalog
type catalogFile struct {
	Monitors []catalogEntry `toml:"monitors" yaml:"monitors"`
}

type catalogEntry struct {
	ID        string     `toml:"id,omitempty" yaml:"id,omitempty"`
	Name      string     `toml:"name" yaml:"name"`
	Type      string     `toml:"type" yaml:"type"`
	Severity  string     `toml:"severity" yaml:"severity"`
	Model     string     `toml:"model" yaml:"model"`
	Alerts    int        `toml:"alerts" yaml:"alerts"`
	CreatedAt time.Time  `toml:"created_at" yaml:"created_at"`
	LastRun   *time.Time `toml:"last_run,omitempty" yaml:"last_run,omitempty"`
}

// LoadCatalog reads monitors from a TOML or YAML file, chosen by extension.
// Entries without an id get a fresh random UUID.
func LoadCatalog(path string) ([]*domain.Monitor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	return ParseCatalog(data, filepath.Ext(path))
}

// ParseCatalog decodes catalog bytes; ext is the file extension including the dot
func ParseCatalog(data []byte, ext string) ([]*domain.Monitor, error) {
	var file catalogFile
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, "failed to parse TOML catalog")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML catalog")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "extension %q", ext)
	}

	monitors := make([]*domain.Monitor, 0, len(file.Monitors))
	for i, entry := range file.Monitors {
		m, err := entry.toMonitor()
		if err != nil {
			return nil, errors.Wrapf(err, "monitor #%d", i+1)
		}
		monitors = append(monitors, m)
	}
	return monitors, nil
}

func (e catalogEntry) toMonitor() (*domain.Monitor, error) {
	if strings.TrimSpace(e.Name) == "" {
		return nil, errors.New("name is required")
	}

	id := uuid.New()
	if e.ID != "" {
		parsed, err := uuid.Parse(e.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid id %q", e.ID)
		}
		id = parsed
	}

	monitorType := domain.MonitorType(strings.ToLower(e.Type))
	if !monitorType.Valid() {
		return nil, errors.Newf("unknown monitor type %q", e.Type)
	}

	severity := domain.Severity(strings.ToLower(e.Severity))
	if e.Severity == "" {
		severity = domain.SeverityMedium
	}
	if !severity.Valid() {
		return nil, errors.Newf("unknown severity %q", e.Severity)
	}

	return &domain.Monitor{
		ID:         id,
		Name:       e.Name,
		Type:       monitorType,
		Severity:   severity,
		ModelName:  e.Model,
		AlertCount: e.Alerts,
		CreatedAt:  e.CreatedAt,
		LastRun:    e.LastRun,
	}, nil
}
