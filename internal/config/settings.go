package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Defaults used when neither flags, env vars nor settings.json say otherwise
const (
	DefaultBranch         = "master"
	DefaultMaxWaitSeconds = 120
	DefaultRepo           = "milvus-io/milvus"
	DefaultSinceDays      = 30
)

var repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Settings represents the structure of ~/.pickcheck/settings.json
type Settings struct {
	AllBranches    *bool       `json:"all_branches,omitempty"`
	APIURL         string      `json:"api_url,omitempty"`
	AutoWait       *bool       `json:"auto_wait,omitempty"`
	Branch         string      `json:"branch,omitempty"`
	BranchLimit    *int        `json:"branch_limit,omitempty"`
	Debug          *bool       `json:"debug,omitempty"`
	ExcludeOpen    *bool       `json:"exclude_open,omitempty"`
	MaxLogFiles    *int        `json:"max_log_files,omitempty"`
	MaxWaitSeconds *int        `json:"max_wait_seconds,omitempty"`
	Repo           string      `json:"repo,omitempty"`
	SinceDays      *int        `json:"since_days,omitempty"`
	Targets        StringArray `json:"targets,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = ParseCommaSeparated(str)
	return nil
}

// ParseCommaSeparated splits comma-separated string and trims whitespace
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ValidateRepo checks that repo looks like owner/name
func ValidateRepo(repo string) error {
	if !repoPattern.MatchString(repo) {
		return fmt.Errorf("invalid repository %q: expected format 'owner/repo'", repo)
	}
	return nil
}

// Validate checks for configuration errors
func (s *Settings) Validate() error {
	if s.Repo != "" {
		if err := ValidateRepo(s.Repo); err != nil {
			return err
		}
	}

	nonNegative := map[string]*int{
		"branch_limit":     s.BranchLimit,
		"max_log_files":    s.MaxLogFiles,
		"max_wait_seconds": s.MaxWaitSeconds,
		"since_days":       s.SinceDays,
	}
	for name, v := range nonNegative {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, *v)
		}
	}

	return nil
}

// LoadSettings loads settings from $PICKCHECK_HOME/settings.json (or ~/.pickcheck/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PICKCHECK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
