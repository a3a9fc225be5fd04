package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Intersection is symmetric
			if tc.b.Intersects(tc.a) != tc.expected {
				t.Errorf("Intersects() not symmetric for %s", tc.name)
			}
		})
	}
}

func TestRectClosestPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 10)

	tests := []struct {
		name     string
		p        Vec
		expected Vec
	}{
		{"point left of rect", Vec{0, 15}, Vec{10, 15}},
		{"point right of rect", Vec{40, 15}, Vec{30, 15}},
		{"point above rect", Vec{20, 0}, Vec{20, 10}},
		{"point below rect", Vec{20, 30}, Vec{20, 20}},
		{"point at corner diagonal", Vec{0, 0}, Vec{10, 10}},
		{"point inside rect", Vec{15, 12}, Vec{15, 12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ClosestPoint(tc.p)
			if got != tc.expected {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVecNormalized(t *testing.T) {
	v := Vec{3, 4}
	n := v.Normalized()
	if math.Abs(n.Len()-1.0) > 1e-9 {
		t.Errorf("Normalized().Len() = %v, expected 1.0", n.Len())
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Normalized() = %v, expected (0.6, 0.8)", n)
	}

	zero := Vec{}.Normalized()
	if zero != (Vec{}) {
		t.Errorf("zero vector Normalized() = %v, expected zero", zero)
	}
}

func TestVecRotated(t *testing.T) {
	v := Vec{1, 0}
	r := v.Rotated(math.Pi / 2)
	if math.Abs(r.X) > 1e-9 || math.Abs(r.Y-1) > 1e-9 {
		t.Errorf("Rotated(90deg) = %v, expected (0, 1)", r)
	}

	// Rotation preserves magnitude
	v = Vec{3, -4}
	r = v.Rotated(0.37)
	if math.Abs(r.Len()-v.Len()) > 1e-9 {
		t.Errorf("Rotated changed magnitude: %v -> %v", v.Len(), r.Len())
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5,0,10) = %v", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1,0,10) = %v", got)
	}
	if got := ClampF(11, 0, 10); got != 10 {
		t.Errorf("ClampF(11,0,10) = %v", got)
	}
}
