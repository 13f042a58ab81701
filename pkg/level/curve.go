// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package level

import "math"

const (
	// DefaultBaseCost is the experience needed to go from level 0 to level 1.
	DefaultBaseCost = 100
	// DefaultGrowth scales the quadratic part of each level step.
	DefaultGrowth = 10

	// MaxLevel keeps ExperienceFor inside int64 for the default curve.
	MaxLevel = 1_000_000
)

// Curve maps cumulative experience to a level number.
//
// Reaching level L+1 from level L costs BaseCost + Growth*L*L, so the total
// experience required for level L is
//
//	BaseCost*L + Growth*(L-1)*L*(2L-1)/6
//
// Curve has no state and is safe for concurrent use.
type Curve struct {
	BaseCost int64
	Growth   int64
}

// DefaultCurve returns the curve used when nothing is configured.
func DefaultCurve() Curve {
	return Curve{BaseCost: DefaultBaseCost, Growth: DefaultGrowth}
}

// NewCurve creates a curve, falling back to the defaults for non-positive values.
func NewCurve(baseCost, growth int64) Curve {
	if baseCost <= 0 {
		baseCost = DefaultBaseCost
	}
	if growth < 0 {
		growth = DefaultGrowth
	}
	return Curve{BaseCost: baseCost, Growth: growth}
}

// ExperienceFor returns the total experience needed to reach level.
func (c Curve) ExperienceFor(level int) int64 {
	if level <= 0 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	l := int64(level)
	linear := c.BaseCost * l
	if linear/l != c.BaseCost {
		return math.MaxInt64
	}
	quadratic := (l - 1) * l * (2*l - 1) / 6
	if c.Growth > 0 && quadratic > (math.MaxInt64-linear)/c.Growth {
		// saturate instead of wrapping so the curve stays monotonic
		return math.MaxInt64
	}
	return linear + c.Growth*quadratic
}

// LevelFor returns the highest level whose requirement is covered by total.
// Negative totals are treated as zero.
func (c Curve) LevelFor(total int64) int {
	if total <= 0 || c.BaseCost <= 0 {
		return 0
	}

	lo, hi := 0, MaxLevel
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if c.ExperienceFor(mid) <= total {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// DidLevelUp reports whether before and after fall on different levels.
func (c Curve) DidLevelUp(before, after int64) bool {
	return c.LevelFor(before) != c.LevelFor(after)
}
