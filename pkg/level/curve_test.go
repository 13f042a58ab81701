// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package level

import (
	"math"
	"testing"
)

func TestCurve_ExperienceFor(t *testing.T) {
	curve := DefaultCurve()

	tests := []struct {
		level    int
		expected int64
	}{
		{level: -1, expected: 0},
		{level: 0, expected: 0},
		{level: 1, expected: 100},
		{level: 2, expected: 210},
		{level: 3, expected: 350},
		{level: 4, expected: 540},
	}

	for _, tt := range tests {
		if got := curve.ExperienceFor(tt.level); got != tt.expected {
			t.Errorf("ExperienceFor(%d) = %d, expected %d", tt.level, got, tt.expected)
		}
	}
}

func TestCurve_LevelFor(t *testing.T) {
	curve := DefaultCurve()

	tests := []struct {
		name     string
		total    int64
		expected int
	}{
		{name: "negative total", total: -5, expected: 0},
		{name: "zero", total: 0, expected: 0},
		{name: "first message", total: 1, expected: 0},
		{name: "just below level 1", total: 99, expected: 0},
		{name: "exactly level 1", total: 100, expected: 1},
		{name: "between 1 and 2", total: 209, expected: 1},
		{name: "exactly level 2", total: 210, expected: 2},
		{name: "exactly level 3", total: 350, expected: 3},
		{name: "huge total", total: math.MaxInt64, expected: MaxLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := curve.LevelFor(tt.total); got != tt.expected {
				t.Errorf("LevelFor(%d) = %d, expected %d", tt.total, got, tt.expected)
			}
		})
	}
}

func TestCurve_LevelForIsMonotonic(t *testing.T) {
	curves := []Curve{
		DefaultCurve(),
		NewCurve(1, 0),
		NewCurve(50, 3),
		NewCurve(1_000_000, 1_000_000),
	}

	for _, curve := range curves {
		prev := curve.LevelFor(0)
		for total := int64(1); total < 20_000; total += 7 {
			cur := curve.LevelFor(total)
			if cur < prev {
				t.Fatalf("curve %+v: LevelFor(%d) = %d < previous %d", curve, total, cur, prev)
			}
			prev = cur
		}
	}
}

func TestCurve_RoundTrip(t *testing.T) {
	curve := DefaultCurve()

	for lvl := 0; lvl < 500; lvl++ {
		need := curve.ExperienceFor(lvl)
		if got := curve.LevelFor(need); got != lvl {
			t.Fatalf("LevelFor(ExperienceFor(%d)) = %d", lvl, got)
		}
		if lvl > 0 {
			if got := curve.LevelFor(need - 1); got != lvl-1 {
				t.Fatalf("LevelFor(ExperienceFor(%d)-1) = %d, expected %d", lvl, got, lvl-1)
			}
		}
	}
}

func TestCurve_DidLevelUp(t *testing.T) {
	curve := DefaultCurve()

	tests := []struct {
		name          string
		before, after int64
		expected      bool
	}{
		{name: "no change", before: 10, after: 10, expected: false},
		{name: "same level", before: 0, after: 1, expected: false},
		{name: "cross level 1", before: 99, after: 100, expected: true},
		{name: "cross several levels", before: 0, after: 1000, expected: true},
		{name: "inside level 2", before: 210, after: 349, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := curve.DidLevelUp(tt.before, tt.after); got != tt.expected {
				t.Errorf("DidLevelUp(%d, %d) = %v, expected %v", tt.before, tt.after, got, tt.expected)
			}
			// repeated calls must agree
			if got := curve.DidLevelUp(tt.before, tt.after); got != tt.expected {
				t.Errorf("DidLevelUp is not stable for (%d, %d)", tt.before, tt.after)
			}
		})
	}
}

func TestNewCurve_Defaults(t *testing.T) {
	curve := NewCurve(0, -1)
	if curve != DefaultCurve() {
		t.Errorf("NewCurve(0, -1) = %+v, expected defaults", curve)
	}
}
