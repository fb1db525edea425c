package surface

import (
	"math"
	"testing"

	"surfview/surfgl"
)

const (
	defaultA = 0.1
	defaultB = 0.05
)

func TestCatalogNamesRoundTrip(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("catalog size=%d", len(all))
	}
	seen := map[string]bool{}
	for _, k := range all {
		name := k.String()
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		got, ok := Parse(name)
		if !ok || got != k {
			t.Fatalf("Parse(%q)=%v,%v", name, got, ok)
		}
	}
	if k, ok := Parse("  torus "); !ok || k != Torus {
		t.Fatalf("case-insensitive parse failed")
	}
	if _, ok := Parse("Klein"); ok {
		t.Fatalf("unknown surface parsed")
	}
	if kindCount.Valid() {
		t.Fatalf("sentinel must not be valid")
	}
}

func TestGenerateFiniteOverDomain(t *testing.T) {
	for _, k := range All() {
		d := k.Domain()
		if d.U.Max <= d.U.Min || d.V.Max <= d.V.Min {
			t.Fatalf("%v: empty domain %+v", k, d)
		}
		for _, u := range surfgl.Linspace(d.U, 33) {
			for _, v := range surfgl.Linspace(d.V, 33) {
				p := k.Generate(u, v, defaultA, defaultB)
				if !p.Finite() {
					t.Fatalf("%v(%v,%v)=%+v", k, u, v, p)
				}
			}
		}
	}
}

func TestTorusRadii(t *testing.T) {
	// u=0, v=0: outer equator at R+r on +X.
	p := Torus.Generate(0, 0, 2, 0.5)
	if math.Abs(p.X-2.5) > 1e-12 || math.Abs(p.Y) > 1e-12 || math.Abs(p.Z) > 1e-12 {
		t.Fatalf("torus(0,0)=%+v", p)
	}
	// v=90: top of the tube, z=r, radial distance R.
	p = Torus.Generate(90, 90, 2, 0.5)
	if math.Abs(p.Z-0.5) > 1e-12 || math.Abs(math.Hypot(p.X, p.Y)-2) > 1e-12 {
		t.Fatalf("torus(90,90)=%+v", p)
	}
}

func TestMobiusHalfTwist(t *testing.T) {
	// After a full turn of u the band comes back flipped: v maps to -v.
	for _, v := range []float64{-1, -0.5, 0.5, 1} {
		start := Mobius.Generate(0, v, 1, 1)
		end := Mobius.Generate(360, -v, 1, 1)
		if math.Abs(start.X-end.X) > 1e-9 || math.Abs(start.Y-end.Y) > 1e-9 || math.Abs(start.Z-end.Z) > 1e-9 {
			t.Fatalf("v=%v start=%+v end=%+v", v, start, end)
		}
	}
	// z twists with sin(u/2): zero at u=0, b*v at u=180.
	if p := Mobius.Generate(180, 1, 1, 0.5); math.Abs(p.Z-0.5) > 1e-12 {
		t.Fatalf("z at u=180: %v", p.Z)
	}
}

func TestHelicalTurnsAndHeight(t *testing.T) {
	// 72 degrees of u is one full turn of the ramp.
	a := Helical.Generate(0, 1, 0.2, 0.1)
	b := Helical.Generate(72, 1, 0.2, 0.1)
	if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 {
		t.Fatalf("a=%+v b=%+v", a, b)
	}
	if math.Abs(a.X-1) > 1e-12 {
		t.Fatalf("radius=%v want 5a=1", a.X)
	}
	// Height is linear in v: z = 10*b*v.
	if p := Helical.Generate(10, 3, 0.2, 0.1); math.Abs(p.Z-3) > 1e-12 {
		t.Fatalf("z=%v", p.Z)
	}
}

func TestSpiralClimbs(t *testing.T) {
	lo := Spiral.Generate(0, 0, 0.1, 0.05)
	hi := Spiral.Generate(360, 0, 0.1, 0.05)
	if math.Abs((hi.Z-lo.Z)-0.2*2*math.Pi) > 1e-9 {
		t.Fatalf("climb per turn=%v", hi.Z-lo.Z)
	}
}

func TestSeashellGrowth(t *testing.T) {
	near := Seashell.Generate(0, 0, 0.1, 0.05)
	far := Seashell.Generate(0, 360, 0.1, 0.05)
	if surfgl.Len(far) <= surfgl.Len(near) {
		t.Fatalf("shell should grow along v: %v <= %v", surfgl.Len(far), surfgl.Len(near))
	}
}

func TestGeneratorBindsShape(t *testing.T) {
	gen := Torus.Generator(1, 0.25)
	if gen(30, 60) != Torus.Generate(30, 60, 1, 0.25) {
		t.Fatalf("generator mismatch")
	}
}

func TestInvalidKind(t *testing.T) {
	k := Kind(200)
	if k.Valid() || k.String() != "?" || k.Domain() != (Domain{}) || k.Generate(1, 2, 3, 4) != (surfgl.Vec3{}) {
		t.Fatalf("invalid kind should be inert")
	}
}
