package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Размеры шрифтов, которые использует интерфейс.
const (
	SizeHUD    = 20
	SizeBanner = 36
	SizeTitle  = 64
)

// FontManager разбирает встроенный TTF один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager создает менеджер поверх шрифта Go Regular.
func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face возвращает начертание нужного размера, создавая его при первом запросе.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

// MustFace — как Face, но для стандартных размеров, которые не могут не загрузиться.
func (m *FontManager) MustFace(size float64) font.Face {
	face, err := m.Face(size)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}
	return face
}

// Cleanup закрывает все созданные начертания.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: closing font face %.0fpt: %v", size, err)
		}
		delete(m.faces, size)
	}
}
