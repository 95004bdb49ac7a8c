package audio

import (
	"fmt"
	"io/fs"
	"path"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultExtensions is the lookup order for extension-less sound names.
var DefaultExtensions = []string{".ogg", ".wav", ".mp3"}

// Assets resolves logical sound names to files and keeps recently decoded
// clips in a bounded cache.
type Assets struct {
	fsys    fs.FS
	exts    []string
	decoder Decoder
	cache   *lru.Cache[string, Clip]
	missing map[string]struct{}
}

// NewAssets creates a resolver over fsys. A nil fsys resolves nothing, which
// makes every cue a silent no-op.
func NewAssets(fsys fs.FS, exts []string, decoder Decoder, cacheSize int) (*Assets, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	if cacheSize <= 0 {
		cacheSize = 64
	}
	cache, err := lru.New[string, Clip](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot create clip cache: %w", err)
	}
	return &Assets{
		fsys:    fsys,
		exts:    exts,
		decoder: decoder,
		cache:   cache,
		missing: make(map[string]struct{}),
	}, nil
}

// Resolve returns the file path for a logical name. A name that already
// carries an extension must exist as given; otherwise each configured
// extension is tried in order.
func (a *Assets) Resolve(name string) (string, error) {
	if a.fsys == nil {
		return "", fmt.Errorf("%w: %s", ErrAssetMissing, name)
	}
	if path.Ext(name) != "" {
		if exists(a.fsys, name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrAssetMissing, name)
	}
	for _, ext := range a.exts {
		p := name + ext
		if exists(a.fsys, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrAssetMissing, name)
}

// Load returns the decoded clip for name, decoding it on first use.
// Names that failed to resolve or decode are remembered and fail fast.
func (a *Assets) Load(name string) (Clip, error) {
	if clip, ok := a.cache.Get(name); ok {
		return clip, nil
	}
	if _, bad := a.missing[name]; bad {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, name)
	}

	p, err := a.Resolve(name)
	if err != nil {
		a.missing[name] = struct{}{}
		return nil, err
	}

	f, err := a.fsys.Open(p)
	if err != nil {
		a.missing[name] = struct{}{}
		return nil, fmt.Errorf("audio: cannot open %s: %w", p, err)
	}
	defer f.Close()

	clip, err := a.decoder.Decode(p, f)
	if err != nil {
		a.missing[name] = struct{}{}
		return nil, fmt.Errorf("audio: cannot decode %s: %w", p, err)
	}
	a.cache.Add(name, clip)
	return clip, nil
}

// Cached returns the number of decoded clips currently held.
func (a *Assets) Cached() int {
	return a.cache.Len()
}

func exists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}
