package text

import (
	"fmt"
	"os"
	"sync"

	"github.com/rands/exceedbar"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet is the regular and bold font of one family.
//
// FontSet is safe for concurrent use. Faces are created lazily per
// (size, weight) and cached; x/image faces are not concurrency-safe, so
// every use goes through withFace.
type FontSet struct {
	data  [2][]byte
	fonts [2]*opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size   float64
	weight exceedbar.FontWeight
}

// NewFontSet parses the regular and bold font files. bold may be nil, in
// which case the regular font is used for both weights.
func NewFontSet(regular, bold []byte) (*FontSet, error) {
	if len(regular) == 0 {
		return nil, ErrEmptyFontData
	}
	if len(bold) == 0 {
		bold = regular
	}

	fs := &FontSet{
		data:  [2][]byte{regular, bold},
		faces: make(map[faceKey]font.Face),
	}
	for i, data := range fs.data {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse %s font: %w", exceedbar.FontWeight(i), err)
		}
		fs.fonts[i] = f
	}
	return fs, nil
}

// LoadFontSet reads and parses two font files. An empty regularPath
// selects Go Regular and an empty boldPath reuses the regular font. With
// both paths empty it returns GoFonts.
func LoadFontSet(regularPath, boldPath string) (*FontSet, error) {
	if regularPath == "" && boldPath == "" {
		return GoFonts(), nil
	}
	regular, err := readFont(regularPath, goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := readFont(boldPath, nil)
	if err != nil {
		return nil, err
	}
	return NewFontSet(regular, bold)
}

// readFont returns the file at path, or def when path is empty.
func readFont(path string, def []byte) ([]byte, error) {
	if path == "" {
		return def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return data, nil
}

var (
	goFontsOnce sync.Once
	goFonts     *FontSet
)

// GoFonts returns the embedded Go Regular / Go Bold set. The set is
// shared.
func GoFonts() *FontSet {
	goFontsOnce.Do(func() {
		fs, err := NewFontSet(goregular.TTF, gobold.TTF)
		if err != nil {
			panic(err) // embedded fonts always parse
		}
		goFonts = fs
	})
	return goFonts
}

// Data returns the raw font file for w.
func (fs *FontSet) Data(w exceedbar.FontWeight) []byte {
	return fs.data[weightIndex(w)]
}

// withFace runs fn with the cached face for (size, w) while holding the
// set's lock.
func (fs *FontSet) withFace(size float64, w exceedbar.FontWeight, fn func(font.Face)) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	key := faceKey{size: size, weight: w}
	face, ok := fs.faces[key]
	if !ok {
		var err error
		if face, err = fs.Face(size, w); err != nil {
			return fmt.Errorf("text: face %s %.1fpx: %w", w, size, err)
		}
		fs.faces[key] = face
	}
	fn(face)
	return nil
}

// Face returns a new x/image face for (size, w). The caller owns it.
func (fs *FontSet) Face(size float64, w exceedbar.FontWeight) (font.Face, error) {
	return opentype.NewFace(fs.fonts[weightIndex(w)], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func weightIndex(w exceedbar.FontWeight) int {
	if w == exceedbar.FontBold {
		return 1
	}
	return 0
}
