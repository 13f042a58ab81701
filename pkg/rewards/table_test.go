// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rewards

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
rewards:
  - group_id: 10
    level: 5
    role_id: 300
    automatic: true
  - group_id: 10
    level: 5
    role_id: 200
    automatic: true
  - group_id: 10
    level: 5
    role_id: 100
    automatic: false
  - group_id: 20
    level: ${REWARD_TEST_LEVEL:7}
    role_id: 400
    automatic: true
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if table.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", table.Len())
	}

	got := table.Automatic(10, 5)
	if len(got) != 2 || got[0].RoleID != 200 || got[1].RoleID != 300 {
		t.Errorf("Automatic(10, 5) = %+v, expected roles [200 300]", got)
	}

	if got := table.Automatic(20, 7); len(got) != 1 {
		t.Errorf("Automatic(20, 7) = %+v, expected the defaulted level to apply", got)
	}
	if got := table.Automatic(10, 6); len(got) != 0 {
		t.Errorf("Automatic(10, 6) = %+v, expected none", got)
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("REWARD_TEST_LEVEL", "9")

	table, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := table.Automatic(20, 9); len(got) != 1 {
		t.Errorf("Automatic(20, 9) = %+v, expected one reward", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing group", yaml: "rewards:\n  - level: 1\n    role_id: 1\n"},
		{name: "missing role", yaml: "rewards:\n  - group_id: 1\n    level: 1\n"},
		{name: "zero level", yaml: "rewards:\n  - group_id: 1\n    role_id: 1\n    level: 0\n"},
		{name: "duplicate role", yaml: "rewards:\n  - {group_id: 1, role_id: 1, level: 1}\n  - {group_id: 1, role_id: 1, level: 2}\n"},
		{name: "bad yaml", yaml: "rewards: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() expected error")
			}
		})
	}
}

func TestLoadOptional(t *testing.T) {
	table, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", table.Len())
	}

	path := filepath.Join(t.TempDir(), "rewards.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	table, err = LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", table.Len())
	}
}
