package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultTextSize is used when a TextStyle leaves Size at 0.
const DefaultTextSize = 16

// Sizes at or above this use the opentype rasterizer; smaller HUD text goes
// through freetype, which hints better at small sizes.
const largeTextSize = 24

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// faceCache hands out font faces by point size, parsing the font once.
type faceCache struct {
	logger Logger

	once   sync.Once
	otFont *opentype.Font
	ttFont *truetype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

func newFaceCache(logger Logger) *faceCache {
	if logger == nil {
		logger = noopLogger{}
	}
	return &faceCache{logger: logger, faces: make(map[int]font.Face)}
}

func (fc *faceCache) load() {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		fc.logger.Errorf("fb", "font parse failed, using basicfont: %v", err)
	} else {
		fc.otFont = fnt
	}
	// Also try parsing truetype for freetype renderer
	if tt, terr := truetype.Parse(goregular.TTF); terr != nil {
		fc.logger.Errorf("fb", "truetype parse failed: %v", terr)
	} else {
		fc.ttFont = tt
	}
}

func (fc *faceCache) face(size int) font.Face {
	fc.once.Do(fc.load)
	if size <= 0 {
		size = DefaultTextSize
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if face, ok := fc.faces[size]; ok {
		return face
	}
	face := fc.newFace(size)
	fc.faces[size] = face
	return face
}

func (fc *faceCache) newFace(size int) font.Face {
	if size < largeTextSize && fc.ttFont != nil {
		return truetype.NewFace(fc.ttFont, &truetype.Options{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	}
	if fc.otFont != nil {
		face, err := opentype.NewFace(fc.otFont, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
		if err == nil {
			return face
		}
		fc.logger.Errorf("fb", "font face create failed, using basicfont: %v", err)
	}
	return basicfont.Face7x13
}
