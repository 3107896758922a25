package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCheckAABBVsAABB(t *testing.T) {
	cases := []struct {
		name       string
		a, b       AABB
		collides   bool
		wantNormal Vec
		wantPen    float64
	}{
		{
			// Equal overlaps on both axes: the strict `<` comparison must
			// fall through to the Y branch.
			name:       "equal_overlap_picks_y",
			a:          AABB{0, 0, 10, 10},
			b:          AABB{5, 5, 10, 10},
			collides:   true,
			wantNormal: Vec{Y: 1},
			wantPen:    5,
		},
		{
			name:       "smaller_x_overlap",
			a:          AABB{0, 0, 10, 10},
			b:          AABB{8, 2, 10, 10},
			collides:   true,
			wantNormal: Vec{X: 1},
			wantPen:    2,
		},
		{
			name:       "smaller_y_overlap_negative_normal",
			a:          AABB{0, 10, 10, 10},
			b:          AABB{2, 2, 10, 10},
			collides:   true,
			wantNormal: Vec{Y: -1},
			wantPen:    2,
		},
		{
			name:     "disjoint",
			a:        AABB{0, 0, 10, 10},
			b:        AABB{50, 0, 10, 10},
			collides: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := CheckAABBVsAABB(c.a, c.b)
			if m.HasCollision != c.collides {
				t.Fatalf("HasCollision = %v, want %v", m.HasCollision, c.collides)
			}
			if !c.collides {
				if m.Normal != (Vec{}) || m.Penetration != 0 {
					t.Fatalf("no-contact manifold not zeroed: %+v", m)
				}
				return
			}
			if m.Normal != c.wantNormal {
				t.Fatalf("Normal = %v, want %v", m.Normal, c.wantNormal)
			}
			if !almostEqual(m.Penetration, c.wantPen) {
				t.Fatalf("Penetration = %v, want %v", m.Penetration, c.wantPen)
			}
		})
	}
}

func TestCheckCircleVsCircle(t *testing.T) {
	t.Run("spec_scenario", func(t *testing.T) {
		m := CheckCircleVsCircle(
			Circle{Center: Vec{0, 0}, Radius: 5},
			Circle{Center: Vec{8, 0}, Radius: 4},
		)
		if !m.HasCollision {
			t.Fatal("expected collision")
		}
		if !almostEqual(m.Penetration, 1) {
			t.Fatalf("Penetration = %v, want 1", m.Penetration)
		}
		if m.Normal != (Vec{X: 1}) {
			t.Fatalf("Normal = %v, want (1,0)", m.Normal)
		}
	})

	t.Run("matches_distance_predicate", func(t *testing.T) {
		pairs := []struct {
			a, b Circle
		}{
			{Circle{Vec{0, 0}, 5}, Circle{Vec{8, 0}, 4}},
			{Circle{Vec{0, 0}, 2}, Circle{Vec{10, 0}, 2}},
			{Circle{Vec{1, 1}, 3}, Circle{Vec{2, 2}, 3}},
			{Circle{Vec{0, 0}, 1}, Circle{Vec{2, 0}, 1}},
			{Circle{Vec{-4, 3}, 2.5}, Circle{Vec{0, 0}, 2.4}},
		}
		for _, p := range pairs {
			m := CheckCircleVsCircle(p.a, p.b)
			dist := p.a.Center.Distance(p.b.Center)
			want := dist < p.a.Radius+p.b.Radius
			if m.HasCollision != want {
				t.Fatalf("circle %v vs %v: HasCollision=%v, want %v", p.a, p.b, m.HasCollision, want)
			}
			if m.HasCollision && !almostEqual(m.Penetration, p.a.Radius+p.b.Radius-dist) {
				t.Fatalf("penetration %v, want %v", m.Penetration, p.a.Radius+p.b.Radius-dist)
			}
		}
	})

	t.Run("coincident_centers_fallback", func(t *testing.T) {
		m := CheckCircleVsCircle(Circle{Vec{3, 3}, 2}, Circle{Vec{3, 3}, 2})
		if !m.HasCollision {
			t.Fatal("expected collision")
		}
		if m.Normal != (Vec{X: 1}) {
			t.Fatalf("fallback normal = %v, want (1,0)", m.Normal)
		}
	})
}

func TestCheckCircleVsAABB(t *testing.T) {
	t.Run("outside_overlapping", func(t *testing.T) {
		m := CheckCircleVsAABB(Circle{Vec{-3, 5}, 4}, AABB{0, 0, 10, 10})
		if !m.HasCollision {
			t.Fatal("expected collision")
		}
		if m.Normal != (Vec{X: 1}) {
			t.Fatalf("Normal = %v, want (1,0)", m.Normal)
		}
		if !almostEqual(m.Penetration, 1) {
			t.Fatalf("Penetration = %v, want 1", m.Penetration)
		}
	})

	t.Run("outside_separated", func(t *testing.T) {
		m := CheckCircleVsAABB(Circle{Vec{-10, 5}, 4}, AABB{0, 0, 10, 10})
		if m.HasCollision {
			t.Fatalf("expected no collision, got %+v", m)
		}
	})

	t.Run("center_inside_picks_nearest_face", func(t *testing.T) {
		// Center at (2, 5) inside a 10x10 box: left face is nearest.
		m := CheckCircleVsAABB(Circle{Vec{2, 5}, 1}, AABB{0, 0, 10, 10})
		if !m.HasCollision {
			t.Fatal("expected collision")
		}
		if m.Normal != (Vec{X: 1}) {
			t.Fatalf("Normal = %v, want inward (1,0)", m.Normal)
		}
		if !almostEqual(m.Penetration, 3) {
			t.Fatalf("Penetration = %v, want radius+faceDist = 3", m.Penetration)
		}
	})

	t.Run("center_inside_bottom_face", func(t *testing.T) {
		m := CheckCircleVsAABB(Circle{Vec{5, 9}, 1}, AABB{0, 0, 10, 10})
		if !m.HasCollision {
			t.Fatal("expected collision")
		}
		if m.Normal != (Vec{Y: -1}) {
			t.Fatalf("Normal = %v, want (0,-1)", m.Normal)
		}
	})
}

func TestCheckPolygonVsPolygon(t *testing.T) {
	t.Run("disjoint_boxes", func(t *testing.T) {
		a := CreateBox(Vec{0, 0}, 10, 10)
		b := CreateBox(Vec{50, 0}, 10, 10)
		if m := CheckPolygonVsPolygon(a, b); m.HasCollision {
			t.Fatalf("expected separating axis, got %+v", m)
		}
	})

	t.Run("overlapping_boxes", func(t *testing.T) {
		a := CreateBox(Vec{0, 0}, 10, 10)
		b := CreateBox(Vec{8, 0}, 10, 10)
		m := CheckPolygonVsPolygon(a, b)
		if !m.HasCollision {
			t.Fatal("expected collision")
		}
		if m.Normal.X <= 0 || !almostEqual(m.Normal.Y, 0) {
			t.Fatalf("Normal = %v, want +X toward b", m.Normal)
		}
		if !almostEqual(m.Penetration, 2) {
			t.Fatalf("Penetration = %v, want 2", m.Penetration)
		}
		if !almostEqual(m.ContactPoint.X, 4) {
			t.Fatalf("ContactPoint = %v, want centroid midpoint x=4", m.ContactPoint)
		}
	})

	t.Run("triangle_vs_box", func(t *testing.T) {
		tri := NewPolygon(Vec{0, 0}, []Vec{{-5, 5}, {5, 5}, {0, -5}})
		box := CreateBox(Vec{0, 8}, 10, 10)
		if m := CheckPolygonVsPolygon(tri, box); !m.HasCollision {
			t.Fatal("expected collision")
		}
		far := CreateBox(Vec{0, 30}, 10, 10)
		if m := CheckPolygonVsPolygon(tri, far); m.HasCollision {
			t.Fatal("expected no collision with distant box")
		}
	})
}

func TestDistanceToPolygonDegenerate(t *testing.T) {
	p := NewPolygon(Vec{}, []Vec{{0, 0}, {1, 0}})
	if d := DistanceToPolygon(Vec{5, 5}, p); d != math.MaxFloat64 {
		t.Fatalf("degenerate polygon distance = %v, want MaxFloat64 sentinel", d)
	}
}

func TestVecNormalizeZeroIsNoOp(t *testing.T) {
	v := Vec{}
	if got := v.Normalize(); got != v {
		t.Fatalf("Normalize on zero vector = %v, want unchanged", got)
	}
	u := Vec{3, 4}.Normalize()
	if math.Abs(u.Length()-1) > epsilon {
		t.Fatalf("Normalize length = %v, want 1", u.Length())
	}
}
