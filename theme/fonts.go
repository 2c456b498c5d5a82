package theme

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
)

// LoadBuiltin returns the Go font collection plus every .ttf file found in
// fontDir and every embedded font. Fonts that fail to load are skipped.
func LoadBuiltin(fontDir string, embeddedFonts [][]byte) []font.FontFace {
	var fonts []font.FontFace
	fonts = append(fonts, gofont.Collection()...)

	for _, data := range embeddedFonts {
		faces, err := loadFont(data)
		if err != nil {
			log.Printf("loading embedded font failed: %v", err)
			continue
		}
		fonts = append(fonts, faces...)
	}

	if fontDir == "" {
		return fonts
	}

	entries, err := os.ReadDir(fontDir)
	if err != nil {
		log.Printf("loading fonts from dir failed: %v", err)
		return fonts
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".ttf" {
			continue
		}
		ttfData, err := os.ReadFile(filepath.Join(fontDir, entry.Name()))
		if err != nil {
			log.Printf("loading fonts from dir failed: %v", err)
			continue
		}

		faces, err := loadFont(ttfData)
		if err != nil {
			log.Printf("skipping font %s: %v", entry.Name(), err)
			continue
		}
		fonts = append(fonts, faces...)
	}

	return fonts
}

func loadFont(ttf []byte) ([]font.FontFace, error) {
	faces, err := opentype.ParseCollection(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return faces, nil
}
