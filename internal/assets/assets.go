// Package assets loads card images by their logical names.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/vovakirdan/tui-solitaire/internal/cards"
)

// DefaultDir is the directory of card images inside an asset tree.
const DefaultDir = "playing-cards"

// ErrNotFound is returned when no image exists for a name.
var ErrNotFound = errors.New("assets: image not found")

// Provider loads an image by logical name, such as "ace_of_hearts" or
// cards.CardBackAsset.
type Provider interface {
	Load(name string) (image.Image, error)
}

// FSProvider reads PNG images named "<dir>/<name>.png" from a file system.
type FSProvider struct {
	fsys fs.FS
	dir  string
}

// NewFSProvider returns a provider for the PNG files under dir in fsys.
func NewFSProvider(fsys fs.FS, dir string) *FSProvider {
	return &FSProvider{fsys: fsys, dir: dir}
}

// Path returns the file name that holds the image for name.
func (p *FSProvider) Path(name string) string {
	return path.Join(p.dir, name+".png")
}

// Load decodes the PNG for name.
func (p *FSProvider) Load(name string) (image.Image, error) {
	f, err := p.fsys.Open(p.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("assets: %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	return img, nil
}

// CardNames returns every card face name in deck order followed by the
// card back.
func CardNames() []string {
	deck := cards.NewDeck()
	names := make([]string, 0, deck.Len()+1)
	deck.Each(func(_ int, c *cards.Card) {
		names = append(names, cards.AssetName(*c))
	})
	return append(names, cards.CardBackAsset)
}

// Cache memoizes the images of another provider. Failed loads are not
// cached.
type Cache struct {
	src    Provider
	mu     sync.Mutex
	images map[string]image.Image
}

// NewCache wraps src.
func NewCache(src Provider) *Cache {
	return &Cache{src: src, images: make(map[string]image.Image)}
}

// Load returns the cached image for name, loading it on first use.
func (c *Cache) Load(name string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[name]; ok {
		return img, nil
	}
	img, err := c.src.Load(name)
	if err != nil {
		return nil, err
	}
	c.images[name] = img
	return img, nil
}

// CardSize reports the pixel size of the card back, which every face
// is expected to share.
func CardSize(p Provider) (w, h int, err error) {
	img, err := p.Load(cards.CardBackAsset)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Preload loads every card image, returning the names that failed.
func Preload(p Provider) (missing []string) {
	for _, name := range CardNames() {
		if _, err := p.Load(name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}
