package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

const (
	// SectionUI holds user-facing behaviour, including worktree settings
	SectionUI = "UI"
	// SectionGit holds settings for git operations performed by collaborators
	SectionGit = "GIT"

	// DefaultWorktreeRoot is used when worktree_root is unset; relative to the repository top level
	DefaultWorktreeRoot = ".stacky/worktrees"
)

// StackyConfig is the merged configuration for one invocation.
// It is built by Load and must not be modified once handed to consumers.
type StackyConfig struct {
	UseWorktree  bool   `yaml:"use_worktree"`
	WorktreeRoot string `yaml:"worktree_root,omitempty"`

	SkipConfirm        bool `yaml:"skip_confirm"`
	ChangeToMain       bool `yaml:"change_to_main"`
	ChangeToAdopted    bool `yaml:"change_to_adopted"`
	ShareSSHSession    bool `yaml:"share_ssh_session"`
	CompactPRDisplay   bool `yaml:"compact_pr_display"`
	EnableStackComment bool `yaml:"enable_stack_comment"`

	UseMerge     bool `yaml:"use_merge"`
	UseForcePush bool `yaml:"use_force_push"`

	// Sources lists the files that were read, in order
	Sources []string `yaml:"-"`
}

// NewStackyConfig returns a config holding the defaults.
func NewStackyConfig() *StackyConfig {
	return &StackyConfig{
		EnableStackComment: true,
		UseForcePush:       true,
	}
}

type boolSetting struct {
	section string
	key     string
	field   func(*StackyConfig) *bool
}

var boolSettings = []boolSetting{
	{SectionUI, "use_worktree", func(c *StackyConfig) *bool { return &c.UseWorktree }},
	{SectionUI, "skip_confirm", func(c *StackyConfig) *bool { return &c.SkipConfirm }},
	{SectionUI, "change_to_main", func(c *StackyConfig) *bool { return &c.ChangeToMain }},
	{SectionUI, "change_to_adopted", func(c *StackyConfig) *bool { return &c.ChangeToAdopted }},
	{SectionUI, "share_ssh_session", func(c *StackyConfig) *bool { return &c.ShareSSHSession }},
	{SectionUI, "compact_pr_display", func(c *StackyConfig) *bool { return &c.CompactPRDisplay }},
	{SectionUI, "enable_stack_comment", func(c *StackyConfig) *bool { return &c.EnableStackComment }},
	{SectionGit, "use_merge", func(c *StackyConfig) *bool { return &c.UseMerge }},
	{SectionGit, "use_force_push", func(c *StackyConfig) *bool { return &c.UseForcePush }},
}

// ReadOneConfig overlays the settings present in one INI file onto c.
// Keys absent from the file keep their current values. A missing file is not an error;
// a file that cannot be parsed, or holds an invalid value, is a ConfigurationError.
func (c *StackyConfig) ReadOneConfig(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &stackyerrors.ConfigurationError{Path: path, Reason: "cannot read config file", Err: err}
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return &stackyerrors.ConfigurationError{Path: path, Reason: "malformed config file", Err: err}
	}

	for _, s := range boolSettings {
		value, ok := lookup(file, s.section, s.key)
		if !ok {
			continue
		}
		parsed, err := parseBool(value)
		if err != nil {
			return &stackyerrors.ConfigurationError{
				Setting: s.section + "." + s.key,
				Path:    path,
				Reason:  "invalid boolean",
				Err:     err,
			}
		}
		*s.field(c) = parsed
	}

	if value, ok := lookup(file, SectionUI, "worktree_root"); ok {
		c.WorktreeRoot = value
	}

	c.Sources = append(c.Sources, path)
	return nil
}

// lookup returns the value of section.key when the file sets it.
func lookup(file *ini.File, section, key string) (string, bool) {
	if !file.HasSection(section) {
		return "", false
	}
	sec := file.Section(section)
	if !sec.HasKey(key) {
		return "", false
	}
	return strings.TrimSpace(sec.Key(key).String()), true
}

// parseBool accepts the same spellings as Python's configparser, case-insensitively.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", value)
}

// ResolveWorktreeRoot returns the directory that holds per-branch worktrees.
// Relative roots are joined to repoRoot; "~/" is expanded to the home directory.
func (c *StackyConfig) ResolveWorktreeRoot(repoRoot string) (string, error) {
	root := c.WorktreeRoot
	if root == "" {
		root = DefaultWorktreeRoot
	}

	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &stackyerrors.ConfigurationError{Setting: "UI.worktree_root", Reason: "cannot expand ~", Err: err}
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}

	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	if repoRoot == "" {
		return "", stackyerrors.NewConfigurationError("UI.worktree_root", "relative worktree root needs a repository top level")
	}
	return filepath.Join(repoRoot, root), nil
}
