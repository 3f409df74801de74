package fontkit

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadFileDefaults(t *testing.T) {
	face, err := LoadFile("", 0)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if face.Size != DefaultSize {
		t.Errorf("Size = %v, want %v", face.Size, DefaultSize)
	}
	if face.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %d, want > 0", face.LineHeight())
	}
	if face.Ascent() <= 0 || face.Ascent() > face.LineHeight() {
		t.Errorf("Ascent() = %d, want within line height %d", face.Ascent(), face.LineHeight())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	if err == nil {
		t.Fatal("LoadFile(missing) succeeded, want error")
	}
}

func TestLoadGarbage(t *testing.T) {
	_, err := Load([]byte("not a font"), 12)
	if !errors.Is(err, ErrFontParse) {
		t.Errorf("error = %v, want ErrFontParse", err)
	}
}

func TestWidthMeasurement(t *testing.T) {
	face, err := LoadFile("", 12)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if w := face.Width(""); w != 0 {
		t.Errorf("Width(empty) = %d, want 0", w)
	}
	short := face.Width("hi")
	long := face.Width("hippopotamus")
	if short <= 0 {
		t.Errorf("Width(hi) = %d, want > 0", short)
	}
	if long <= short {
		t.Errorf("Width(hippopotamus) = %d, want > Width(hi) = %d", long, short)
	}
	if sp := face.SpaceWidth(); sp <= 0 {
		t.Errorf("SpaceWidth() = %d, want > 0", sp)
	}
}

func TestWidthDeterminism(t *testing.T) {
	face, err := LoadFile("", 12)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if a, b := face.Width("warraq"), face.Width("warraq"); a != b {
		t.Errorf("Width not deterministic: %d vs %d", a, b)
	}
}

func TestLoadBold(t *testing.T) {
	face, err := LoadBold(14)
	if err != nil {
		t.Fatalf("LoadBold() error = %v", err)
	}
	if face.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %d, want > 0", face.LineHeight())
	}
}

func TestPixels(t *testing.T) {
	// 26.6 fixed point: 64 units per pixel, rounding at half.
	cases := []struct {
		units int
		want  int
	}{
		{0, 0},
		{64, 1},
		{96, 2},
		{95, 1},
		{640, 10},
	}
	for _, tc := range cases {
		if got := Pixels(tc.units); got != tc.want {
			t.Errorf("Pixels(%d) = %d, want %d", tc.units, got, tc.want)
		}
	}
}
