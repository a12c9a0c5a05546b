package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/muninn/internal/paths"
)

// VaultConfigFile is the name of the vault-level configuration file.
const VaultConfigFile = "muninn.yaml"

// ErrVaultRootMissing indicates that no vault root path was configured.
var ErrVaultRootMissing = errors.New("vault root not configured")

// VaultConfig represents raw vault-level configuration from muninn.yaml.
type VaultConfig struct {
	// DailyDirectory is where daily notes are stored (default: "daily").
	DailyDirectory string `yaml:"daily_directory,omitempty"`

	// DateFormat is the daily-note filename pattern (default: "yyyy-MM-dd-ddd").
	DateFormat string `yaml:"date_format,omitempty"`

	// InboxDirectory is where quick captures land (default: "inbox").
	InboxDirectory string `yaml:"inbox_directory,omitempty"`

	// Sections is the ordered list of daily-note sections. Order here is
	// the order headers appear in the daily template.
	Sections []SectionConfig `yaml:"sections,omitempty"`

	// Imports configures external drop folders for meeting notes and
	// voice transcripts. Folders are optional; an unset folder disables
	// the corresponding import pipeline.
	Imports *ImportsConfig `yaml:"imports,omitempty"`
}

// SectionConfig names one daily-note section and its literal header marker.
type SectionConfig struct {
	Key    string `yaml:"key"`
	Header string `yaml:"header"`
}

// ImportsConfig configures the external drop folders.
type ImportsConfig struct {
	MeetingsFolder  string `yaml:"meetings_folder,omitempty"`
	MeetingsSection string `yaml:"meetings_section,omitempty"`
	VoiceFolder     string `yaml:"voice_folder,omitempty"`
	VoiceSection    string `yaml:"voice_section,omitempty"`
}

// DefaultSections is the stock daily-note section layout.
var DefaultSections = []SectionConfig{
	{Key: "tasks", Header: "## Tasks"},
	{Key: "schedule", Header: "## Schedule"},
	{Key: "meetings", Header: "## Meetings"},
	{Key: "notes", Header: "## Notes"},
	{Key: "voice", Header: "## Voice Notes"},
	{Key: "ideas", Header: "## Ideas"},
	{Key: "review", Header: "## Review"},
}

// Vault is the resolved, immutable configuration for one vault. It is
// created once per command invocation and passed by value into every core
// operation; nothing mutates it afterwards.
type Vault struct {
	// Root is the absolute vault root path.
	Root string
	// Name is the vault display name (last path segment).
	Name string
	// DailyDir is the daily-notes directory, relative to Root.
	DailyDir string
	// DateFormat is the daily-note filename pattern.
	DateFormat string
	// InboxDir is the capture inbox directory, relative to Root.
	InboxDir string
	// Ext is the note file extension, including the dot.
	Ext string
	// Sections is the ordered daily-note section layout.
	Sections []SectionConfig
	// MeetingsFolder is the absolute meeting-notes drop folder ("" if unset).
	MeetingsFolder string
	// MeetingsSection is the section key meeting imports append to.
	MeetingsSection string
	// VoiceFolder is the absolute voice-transcript drop folder ("" if unset).
	VoiceFolder string
	// VoiceSection is the section key voice imports append to.
	VoiceSection string
}

// SectionHeader returns the header marker for a section key.
func (v *Vault) SectionHeader(key string) (string, bool) {
	for _, s := range v.Sections {
		if s.Key == key {
			return s.Header, true
		}
	}
	return "", false
}

// SectionKeys returns the configured section keys in declaration order.
func (v *Vault) SectionKeys() []string {
	keys := make([]string, len(v.Sections))
	for i, s := range v.Sections {
		keys[i] = s.Key
	}
	return keys
}

// DailyPath returns the absolute daily-notes directory.
func (v *Vault) DailyPath() string {
	return filepath.Join(v.Root, v.DailyDir)
}

// InboxPath returns the absolute inbox directory.
func (v *Vault) InboxPath() string {
	return filepath.Join(v.Root, v.InboxDir)
}

// LoadVaultConfig loads muninn.yaml from the vault root.
// Returns an empty config if the file doesn't exist.
func LoadVaultConfig(vaultPath string) (*VaultConfig, error) {
	configPath := filepath.Join(vaultPath, VaultConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &VaultConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", VaultConfigFile, err)
	}

	var vc VaultConfig
	if err := yaml.Unmarshal(data, &vc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", VaultConfigFile, err)
	}
	return &vc, nil
}

// ResolveVault expands and validates a raw vault root against its
// vault-level config, producing the immutable Vault value the core
// operates on. The root is the only required setting; everything else
// falls back to the stock defaults.
func ResolveVault(rawRoot string, vc *VaultConfig) (*Vault, error) {
	if strings.TrimSpace(rawRoot) == "" {
		return nil, ErrVaultRootMissing
	}
	if vc == nil {
		vc = &VaultConfig{}
	}

	root := paths.Expand(rawRoot)

	v := &Vault{
		Root:       root,
		Name:       paths.VaultName(root),
		DailyDir:   paths.NormalizeDirRoot(vc.DailyDirectory),
		DateFormat: vc.DateFormat,
		InboxDir:   paths.NormalizeDirRoot(vc.InboxDirectory),
		Ext:        ".md",
		Sections:   vc.Sections,
	}

	if v.DailyDir == "" {
		v.DailyDir = "daily"
	}
	if v.DateFormat == "" {
		v.DateFormat = defaultDateFormat
	}
	if v.InboxDir == "" {
		v.InboxDir = "inbox"
	}
	if len(v.Sections) == 0 {
		v.Sections = DefaultSections
	}

	if imp := vc.Imports; imp != nil {
		if imp.MeetingsFolder != "" {
			v.MeetingsFolder = paths.Expand(imp.MeetingsFolder)
		}
		if imp.VoiceFolder != "" {
			v.VoiceFolder = paths.Expand(imp.VoiceFolder)
		}
		v.MeetingsSection = imp.MeetingsSection
		v.VoiceSection = imp.VoiceSection
	}
	if v.MeetingsSection == "" {
		v.MeetingsSection = "meetings"
	}
	if v.VoiceSection == "" {
		v.VoiceSection = "voice"
	}

	return v, nil
}

const defaultDateFormat = "yyyy-MM-dd-ddd"

// CreateDefaultVaultConfig writes a commented default muninn.yaml into the
// vault if one doesn't already exist. Returns true if the file was created.
func CreateDefaultVaultConfig(vaultPath string) (bool, error) {
	configPath := filepath.Join(vaultPath, VaultConfigFile)

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	defaultConfig := `# Muninn vault configuration

# Where daily notes live (relative to the vault root)
daily_directory: daily

# Daily note filename pattern (yyyy, MM, dd, ddd tokens)
date_format: yyyy-MM-dd-ddd

# Where quick captures land (relative to the vault root)
inbox_directory: inbox

# Daily note sections, in template order. Headers are matched literally.
sections:
  - key: tasks
    header: "## Tasks"
  - key: schedule
    header: "## Schedule"
  - key: meetings
    header: "## Meetings"
  - key: notes
    header: "## Notes"
  - key: voice
    header: "## Voice Notes"
  - key: ideas
    header: "## Ideas"
  - key: review
    header: "## Review"

# External drop folders for imports (optional)
# imports:
#   meetings_folder: ~/Documents/meeting-notes
#   meetings_section: meetings
#   voice_folder: ~/Documents/voice-transcripts
#   voice_section: voice
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", VaultConfigFile, err)
	}
	return true, nil
}
