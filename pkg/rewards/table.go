// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rewards

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Reward is a role handed out when a member of a group reaches a level.
type Reward struct {
	GroupID        int64 `yaml:"group_id" json:"group_id"`
	Level          int   `yaml:"level" json:"level"`
	RoleID         int64 `yaml:"role_id" json:"role_id"`
	Automatic      bool  `yaml:"automatic" json:"automatic"`
	RequiredRoleID int64 `yaml:"required_role_id,omitempty" json:"required_role_id,omitempty"`
}

// Config is the on-disk layout of the reward table.
type Config struct {
	Rewards []Reward `yaml:"rewards"`
}

type groupLevel struct {
	groupID int64
	level   int
}

// Table answers which rewards belong to a level in a group.
type Table struct {
	byLevel map[groupLevel][]Reward
	size    int
}

// Load reads the reward table from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or ${VAR_NAME:default}.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewards file %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional behaves like Load but returns an empty table when path is
// empty or the file does not exist.
func LoadOptional(path string) (*Table, error) {
	if path == "" {
		return NewTable(nil), nil
	}
	table, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("rewards file %s not found, no level rewards configured", path)
		return NewTable(nil), nil
	}
	return table, err
}

// Parse builds a table from YAML data.
func Parse(data []byte) (*Table, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rewards YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rewards configuration: %w", err)
	}
	return NewTable(cfg.Rewards), nil
}

// Validate checks the table for entries that could never be granted.
func (c *Config) Validate() error {
	seen := make(map[[2]int64]bool)
	for i, r := range c.Rewards {
		if r.GroupID == 0 {
			return fmt.Errorf("reward %d has no group_id", i)
		}
		if r.RoleID == 0 {
			return fmt.Errorf("reward %d has no role_id", i)
		}
		if r.Level <= 0 {
			return fmt.Errorf("reward %d (role %d) has non-positive level %d", i, r.RoleID, r.Level)
		}
		key := [2]int64{r.GroupID, r.RoleID}
		if seen[key] {
			return fmt.Errorf("duplicate reward for role %d in group %d", r.RoleID, r.GroupID)
		}
		seen[key] = true
	}
	return nil
}

// NewTable indexes rewards by group and level.
func NewTable(rewards []Reward) *Table {
	t := &Table{byLevel: make(map[groupLevel][]Reward)}
	for _, r := range rewards {
		key := groupLevel{groupID: r.GroupID, level: r.Level}
		t.byLevel[key] = append(t.byLevel[key], r)
		t.size++
	}
	for _, list := range t.byLevel {
		sort.Slice(list, func(i, j int) bool { return list[i].RoleID < list[j].RoleID })
	}
	return t
}

// Automatic returns the automatic rewards of groupID at exactly level.
func (t *Table) Automatic(groupID int64, level int) []Reward {
	var out []Reward
	for _, r := range t.byLevel[groupLevel{groupID: groupID, level: level}] {
		if r.Automatic {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of configured rewards.
func (t *Table) Len() int {
	return t.size
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
