package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ImageDir is the root of the frame directories inside the asset filesystem.
const ImageDir = "img"

// AnimationSet holds every frame of one character type, keyed by action.
type AnimationSet struct {
	CharType string
	Frames   map[cfg.StateID][]*ebiten.Image

	// Size of the first idle frame after scaling. Characters use it as
	// their hitbox.
	Width  int
	Height int
}

type AnimationLoader struct {
	fsys     fs.FS
	manifest cfg.AnimationManifest
	scale    float64
}

func NewAnimationLoader(fsys fs.FS, manifest cfg.AnimationManifest, scale float64) *AnimationLoader {
	if scale <= 0 {
		scale = 1
	}
	return &AnimationLoader{
		fsys:     fsys,
		manifest: manifest,
		scale:    scale,
	}
}

// FramePath returns where frame i of a character action lives:
// img/<charType>/<action>/<i>0.png.
func FramePath(charType string, state cfg.StateID, i int) string {
	return path.Join(ImageDir, charType, state.String(), fmt.Sprintf("%d0.png", i))
}

// LoadImages decodes and scales every frame the manifest declares for
// charType. A missing directory or frame, or a directory whose PNG count
// differs from the manifest, aborts the load.
func (l *AnimationLoader) LoadImages(charType string) (map[cfg.StateID][]image.Image, error) {
	if err := l.manifest.Validate(charType); err != nil {
		return nil, err
	}
	defs := l.manifest[charType]

	frames := make(map[cfg.StateID][]image.Image, len(cfg.States))
	for _, state := range cfg.States {
		dir := path.Join(ImageDir, charType, state.String())
		entries, err := fs.ReadDir(l.fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("read animation directory %s: %w", dir, err)
		}
		if n := countFrameFiles(entries); n != defs[state].Frames {
			return nil, fmt.Errorf("%s holds %d frames, manifest declares %d", dir, n, defs[state].Frames)
		}

		list := make([]image.Image, 0, defs[state].Frames)
		for i := 0; i < defs[state].Frames; i++ {
			img, err := l.loadFrame(FramePath(charType, state, i))
			if err != nil {
				return nil, err
			}
			list = append(list, img)
		}
		frames[state] = list
	}
	return frames, nil
}

// Load is LoadImages followed by the upload to ebiten images.
func (l *AnimationLoader) Load(charType string) (*AnimationSet, error) {
	images, err := l.LoadImages(charType)
	if err != nil {
		return nil, err
	}

	set := &AnimationSet{
		CharType: charType,
		Frames:   make(map[cfg.StateID][]*ebiten.Image, len(images)),
	}
	for state, list := range images {
		frames := make([]*ebiten.Image, len(list))
		for i, img := range list {
			frames[i] = ebiten.NewImageFromImage(img)
		}
		set.Frames[state] = frames
	}
	b := images[cfg.Idle][0].Bounds()
	set.Width, set.Height = b.Dx(), b.Dy()
	return set, nil
}

func (l *AnimationLoader) loadFrame(p string) (image.Image, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open frame %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", p, err)
	}
	return scaleImage(img, l.scale), nil
}

func scaleImage(src image.Image, scale float64) image.Image {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	w, h := int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func countFrameFiles(entries []fs.DirEntry) int {
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".png") {
			n++
		}
	}
	return n
}
