package hwy

import "testing"

func TestDefaultIsCached(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Fatal("Default returned different targets")
	}
	t.Logf("Dispatch level: %v, width: %d bytes, fma: %v", a.Level(), a.Width(), a.HasFMA())

	if a.Width() < 16 {
		t.Errorf("Width: got %d, want >= 16", a.Width())
	}
	if a.Name() == "" || a.Name() == "unknown" {
		t.Errorf("Name: got %q", a.Name())
	}
}

func TestParseDispatchLevel(t *testing.T) {
	for d := DispatchScalar; d <= DispatchSVE; d++ {
		got, ok := ParseDispatchLevel(d.String())
		if !ok || got != d {
			t.Errorf("ParseDispatchLevel(%q): got %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDispatchLevel("mmx"); ok {
		t.Error("ParseDispatchLevel(mmx): expected failure")
	}
}

func TestFixed(t *testing.T) {
	for _, tg := range AllWidths() {
		if tg.Level() != DispatchScalar {
			t.Errorf("Fixed(%d): level %v, want scalar", tg.Width(), tg.Level())
		}
	}
	if got := Fixed(FixedTag512{}).Width(); got != 64 {
		t.Errorf("Fixed(512).Width: got %d, want 64", got)
	}
}
