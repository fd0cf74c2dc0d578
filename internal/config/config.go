package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/trackcore/internal/arena"
	"github.com/banshee-data/trackcore/internal/protocol"
)

// DefaultConfigPath is the path to the shipped defaults file.
const DefaultConfigPath = "config/trackcore.defaults.yaml"

const (
	DefaultListen               = "127.0.0.1:50051"
	DefaultHTTPListen           = "127.0.0.1:8080"
	DefaultSource               = "synthetic://"
	DefaultRecordingDir         = "recordings"
	DefaultPortRangeStart       = 29000
	DefaultTargetFPS            = 30.0
	DefaultConnectRetryInterval = time.Second
	DefaultConnectDeadline      = 10 * time.Second
)

// Config is the orchestrator configuration file. Every field is optional;
// the Get* methods supply defaults for fields left out.
type Config struct {
	Listen         *string  `yaml:"listen,omitempty"`
	HTTPListen     *string  `yaml:"http_listen,omitempty"`
	PortRangeStart *int     `yaml:"port_range_start,omitempty"`
	TargetFPS      *float64 `yaml:"target_fps,omitempty"`
	Realtime       *bool    `yaml:"realtime,omitempty"`
	EntityCount    *int     `yaml:"entity_count,omitempty"`
	Source         *string  `yaml:"source,omitempty"`
	Seek           *uint32  `yaml:"seek,omitempty"`
	// RecordingDir confines recording paths sent by clients.
	RecordingDir *string `yaml:"recording_dir,omitempty"`

	ConnectRetryInterval *string `yaml:"connect_retry_interval,omitempty"` // duration string like "1s"
	ConnectDeadline      *string `yaml:"connect_deadline,omitempty"`       // duration string like "10s"

	Arena      *ArenaConfig              `yaml:"arena,omitempty"`
	Components []ComponentConfig         `yaml:"components,omitempty"`
	Recording  *protocol.RecordingConfig `yaml:"recording,omitempty"`
}

// ArenaConfig is the arena as written in the file, with corners as
// [x, y] pairs.
type ArenaConfig struct {
	WidthCm              float64      `yaml:"width_cm"`
	HeightCm             float64      `yaml:"height_cm"`
	RectificationCorners [][2]float64 `yaml:"rectification_corners,omitempty"`
	TrackingAreaCorners  [][2]float64 `yaml:"tracking_area_corners,omitempty"`
}

// Arena converts the file form.
func (a ArenaConfig) Arena() protocol.Arena {
	return protocol.Arena{
		WidthCm:              a.WidthCm,
		HeightCm:             a.HeightCm,
		RectificationCorners: points(a.RectificationCorners),
		TrackingAreaCorners:  points(a.TrackingAreaCorners),
	}
}

func points(pairs [][2]float64) []protocol.Point {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]protocol.Point, len(pairs))
	for i, p := range pairs {
		out[i] = protocol.Point{X: p[0], Y: p[1]}
	}
	return out
}

// ComponentConfig is one component entry. Config is passed to the
// component as JSON.
type ComponentConfig struct {
	ID       string                  `yaml:"id"`
	Services []string                `yaml:"services"`
	Address  string                  `yaml:"address,omitempty"`
	Process  *protocol.ProcessConfig `yaml:"process,omitempty"`
	Config   map[string]any          `yaml:"config,omitempty"`
}

// Component converts the file form.
func (c ComponentConfig) Component() (protocol.ComponentConfig, error) {
	out := protocol.ComponentConfig{
		ID:       c.ID,
		Services: append([]string(nil), c.Services...),
		Address:  c.Address,
		Process:  c.Process,
	}
	if len(c.Config) > 0 {
		b, err := json.Marshal(c.Config)
		if err != nil {
			return protocol.ComponentConfig{}, fmt.Errorf("component %s: encode config: %w", c.ID, err)
		}
		out.ConfigJSON = b
	}
	return out, nil
}

// LoadConfig loads a Config from a YAML or JSON file. The file must be
// under 1 MiB and must not contain unknown keys.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	switch ext := filepath.Ext(cleanPath); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("config file must have .yaml, .yml or .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.TargetFPS != nil && (!(*c.TargetFPS > 0) || math.IsInf(*c.TargetFPS, 1)) {
		return fmt.Errorf("target_fps must be positive, got %v", *c.TargetFPS)
	}
	if c.PortRangeStart != nil && (*c.PortRangeStart < 1 || *c.PortRangeStart > 65535) {
		return fmt.Errorf("port_range_start must be a TCP port, got %d", *c.PortRangeStart)
	}
	if c.EntityCount != nil && *c.EntityCount < 0 {
		return fmt.Errorf("entity_count must be non-negative, got %d", *c.EntityCount)
	}
	if c.Source != nil && *c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.RecordingDir != nil && *c.RecordingDir == "" {
		return errors.New("recording_dir must not be empty")
	}

	for name, d := range map[string]*string{
		"connect_retry_interval": c.ConnectRetryInterval,
		"connect_deadline":       c.ConnectDeadline,
	} {
		if d == nil || *d == "" {
			continue
		}
		v, err := time.ParseDuration(*d)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", name, *d, err)
		}
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, *d)
		}
	}

	if c.Arena != nil {
		if _, err := arena.New(c.Arena.Arena()); err != nil {
			return fmt.Errorf("arena: %w", err)
		}
	}

	seen := make(map[string]bool, len(c.Components))
	for i, comp := range c.Components {
		if comp.ID == "" {
			return fmt.Errorf("components[%d]: id is required", i)
		}
		if seen[comp.ID] {
			return fmt.Errorf("components[%d]: duplicate id %q", i, comp.ID)
		}
		seen[comp.ID] = true
		if len(comp.Services) == 0 {
			return fmt.Errorf("component %s: no services", comp.ID)
		}
		for _, s := range comp.Services {
			if _, err := protocol.ParseServiceType(s); err != nil {
				return fmt.Errorf("component %s: %w", comp.ID, err)
			}
		}
		if comp.Process != nil && comp.Process.Command == "" {
			return fmt.Errorf("component %s: process.command is required", comp.ID)
		}
	}

	if r := c.Recording; r != nil && (r.StreamID == "" || r.Path == "") {
		return errors.New("recording needs stream_id and path")
	}
	return nil
}

// GetListen returns the control service address.
func (c *Config) GetListen() string {
	if c.Listen == nil || *c.Listen == "" {
		return DefaultListen
	}
	return *c.Listen
}

// GetHTTPListen returns the status HTTP address.
func (c *Config) GetHTTPListen() string {
	if c.HTTPListen == nil || *c.HTTPListen == "" {
		return DefaultHTTPListen
	}
	return *c.HTTPListen
}

// GetPortRangeStart returns the first port handed to launched components.
func (c *Config) GetPortRangeStart() int {
	if c.PortRangeStart == nil {
		return DefaultPortRangeStart
	}
	return *c.PortRangeStart
}

func (c *Config) GetTargetFPS() float64 {
	if c.TargetFPS == nil {
		return DefaultTargetFPS
	}
	return *c.TargetFPS
}

// GetRealtime returns the realtime flag, on unless disabled.
func (c *Config) GetRealtime() bool {
	if c.Realtime == nil {
		return true // default
	}
	return *c.Realtime
}

func (c *Config) GetEntityCount() int {
	if c.EntityCount == nil {
		return 0
	}
	return *c.EntityCount
}

// GetSource returns the frame source URI.
func (c *Config) GetSource() string {
	if c.Source == nil || *c.Source == "" {
		return DefaultSource
	}
	return *c.Source
}

// GetRecordingDir returns the directory recordings are written under.
func (c *Config) GetRecordingDir() string {
	if c.RecordingDir == nil {
		return DefaultRecordingDir
	}
	return *c.RecordingDir
}

// GetConnectRetryInterval parses and returns ConnectRetryInterval.
func (c *Config) GetConnectRetryInterval() time.Duration {
	return parseDuration(c.ConnectRetryInterval, DefaultConnectRetryInterval)
}

// GetConnectDeadline parses and returns ConnectDeadline.
func (c *Config) GetConnectDeadline() time.Duration {
	return parseDuration(c.ConnectDeadline, DefaultConnectDeadline)
}

func parseDuration(s *string, def time.Duration) time.Duration {
	if s == nil || *s == "" {
		return def
	}
	d, err := time.ParseDuration(*s)
	if err != nil || d <= 0 {
		return def // default on parse error
	}
	return d
}

// GetArena returns the configured arena, or nil to keep the orchestrator
// default.
func (c *Config) GetArena() *protocol.Arena {
	if c.Arena == nil {
		return nil
	}
	a := c.Arena.Arena()
	return &a
}

// GetComponents converts every component entry.
func (c *Config) GetComponents() ([]protocol.ComponentConfig, error) {
	out := make([]protocol.ComponentConfig, 0, len(c.Components))
	for _, comp := range c.Components {
		pc, err := comp.Component()
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}
