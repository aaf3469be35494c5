package assets

import "testing"

func TestFontManagerCachesFaces(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	defer m.Cleanup()

	a, err := m.Face(SizeHUD)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	b := m.MustFace(SizeHUD)
	if a != b {
		t.Error("same size produced two faces")
	}
	if c := m.MustFace(SizeTitle); c == a {
		t.Error("different sizes share a face")
	}
	if h := a.Metrics().Height; h <= 0 {
		t.Errorf("line height = %v", h)
	}

	m.Cleanup()
	if len(m.faces) != 0 {
		t.Errorf("%d faces left after cleanup", len(m.faces))
	}
}
