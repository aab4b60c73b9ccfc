package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFont(t *testing.T) {
	if err := LoadFontWithSize(Debug, goregular.TTF, 12); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	face := Debug.Get()
	if face == nil {
		t.Fatal("expected a face")
	}
	if h := face.Metrics().Height.Ceil(); h <= 0 {
		t.Errorf("expected positive line height, got %d", h)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont(FontName("broken"), []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
