package config

import (
	"errors"
	"image/color"
	"testing"
)

func TestPresetsBuild(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			depth := min(p.DefaultDepth, 4)
			s, err := p.Build(p.DefaultAngle, depth, 1)
			if p.IsField() {
				if !errors.Is(err, ErrFieldPreset) {
					t.Errorf("Build error = %v, want ErrFieldPreset", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if s.IsEmpty() {
				t.Fatal("empty sprite")
			}
			if p.Kind == KindCurve && s.Len()%2 != 0 {
				t.Errorf("curve path has odd row count %d", s.Len())
			}
			b := s.Bounds()
			if b.Width() <= 0 && b.Height() <= 0 && depth > 0 {
				t.Errorf("degenerate bounds %+v", b)
			}
		})
	}
}

func TestPresetParallelMatchesSerial(t *testing.T) {
	p, err := Lookup("quad-pulse")
	if err != nil {
		t.Fatal(err)
	}
	serial, err := p.Build(90, 6, 1)
	if err != nil {
		t.Fatal(err)
	}
	par, err := p.Build(90, 6, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !serial.Equal(par) {
		t.Error("parallel build differs from serial build")
	}
}

func TestPresetDepthLimits(t *testing.T) {
	for _, p := range Presets() {
		if _, err := p.Build(p.DefaultAngle, p.MaxDepth+1, 1); err == nil {
			t.Errorf("%s: depth beyond MaxDepth accepted", p.Name)
		}
		if _, err := p.Build(p.DefaultAngle, -1, 1); err == nil {
			t.Errorf("%s: negative depth accepted", p.Name)
		}
		if p.DefaultDepth > p.MaxDepth {
			t.Errorf("%s: default depth %d above max %d", p.Name, p.DefaultDepth, p.MaxDepth)
		}
	}
}

func TestPresetNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Presets() {
		if seen[p.Name] {
			t.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if got, err := Lookup(p.Name); err != nil || got.Name != p.Name {
			t.Errorf("Lookup(%q) = %v, %v", p.Name, got.Name, err)
		}
	}
}

func TestBuilderCaches(t *testing.T) {
	b := NewBuilder(1, 4)
	s := Default()
	first, err := b.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	again, err := b.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(again) {
		t.Error("cached sprite differs")
	}
	if st := b.Stats(); st.Hits != 1 || st.Len != 1 {
		t.Errorf("Stats() = %+v", st)
	}

	s.Depth++
	if _, err := b.Build(s); err != nil {
		t.Fatal(err)
	}
	if st := b.Stats(); st.Len != 2 {
		t.Errorf("Len after new depth = %d", st.Len)
	}
}

func TestKeyOfDropsUnusedAngle(t *testing.T) {
	s, _ := Default().WithPreset("sierpinski")
	a := s
	a.Angle = 10
	if KeyOf(a) != KeyOf(s) {
		t.Error("angle should not split cache entries for sierpinski")
	}
	k := Default()
	k2 := k
	k2.Angle = 70
	if KeyOf(k) == KeyOf(k2) {
		t.Error("angle must split cache entries for triangle-pulse")
	}
}

func TestFieldPresetShade(t *testing.T) {
	p, err := Lookup("mandelbrot")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsField() || p.Kind.String() != "field" || p.UsesAngle() {
		t.Fatalf("mandelbrot preset = %+v", p)
	}
	if e := p.Extent(); e.Width() <= 0 || e.Height() <= 0 {
		t.Errorf("Extent() = %+v", e)
	}

	outside := color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}
	shade, err := p.Shade(p.DefaultDepth, outside)
	if err != nil {
		t.Fatal(err)
	}
	if got := shade(1, 1); got != outside {
		t.Errorf("shade(1, 1) = %v, want outside color", got)
	}
	// The orbit of 0 stays at 0, so the tint is unrotated: (0, 1) → green and blue.
	if got, want := shade(0, 0), (color.NRGBA{G: 0xff, B: 0xff, A: 0xff}); got != want {
		t.Errorf("shade(0, 0) = %v, want %v", got, want)
	}
	if got := shade(-1, 0); got == outside {
		t.Error("shade(-1, 0) should be inside the set")
	}

	if _, err := p.Shade(p.MaxDepth+1, outside); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("depth beyond max error = %v, want ErrInvalidScene", err)
	}
	koch, _ := Lookup("koch")
	if _, err := koch.Shade(5, outside); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("sprite preset Shade error = %v, want ErrInvalidScene", err)
	}
}

func TestBuilderRejectsFieldPreset(t *testing.T) {
	s, err := Default().WithPreset("mandelbrot")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewBuilder(1, 2).Build(s); !errors.Is(err, ErrFieldPreset) {
		t.Errorf("Build error = %v, want ErrFieldPreset", err)
	}
}
