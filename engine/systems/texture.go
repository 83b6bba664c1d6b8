package systems

import (
	"context"
	"fmt"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type TextureSystemConfig struct {
	/** @brief The maximum number of textures that can be registered at once. */
	MaxTextureCount uint32
	/** @brief How many decoded images may wait for upload before decoders block. */
	PendingQueueSize uint32
}

// TextureOptions control how an image file becomes a texture.
type TextureOptions struct {
	FlipY   bool
	Mipmaps bool
}

// DefaultTextureOptions suit textures wrapped around meshes.
var DefaultTextureOptions = TextureOptions{FlipY: true, Mipmaps: true}

type textureEntry struct {
	texture *metadata.Texture
	options TextureOptions
}

// decodedTexture travels from a decode worker to the render thread.
type decodedTexture struct {
	texture *metadata.Texture
	path    string
	image   *metadata.ImageResourceData
	err     error
}

type TextureSystem struct {
	Config *TextureSystemConfig
	// Registered textures by name. Only touched by the render thread.
	textures map[string]*textureEntry
	pending  chan decodedTexture
	// sub systems
	jobSystem    *JobSystem
	assetManager *assets.AssetManager
	backend      renderer.RendererBackend
	bus          *core.EventBus
}

func NewTextureSystem(config *TextureSystemConfig, js *JobSystem, am *assets.AssetManager, backend renderer.RendererBackend, bus *core.EventBus) (*TextureSystem, error) {
	if config.MaxTextureCount == 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	size := config.PendingQueueSize
	if size == 0 {
		size = config.MaxTextureCount
	}
	return &TextureSystem{
		Config:       config,
		textures:     make(map[string]*textureEntry),
		pending:      make(chan decodedTexture, size),
		jobSystem:    js,
		assetManager: am,
		backend:      backend,
		bus:          bus,
	}, nil
}

/**
 * @brief Returns the texture registered under name, requesting it from the
 * texture directory if this is the first time it is asked for. The returned
 * handle is usable immediately; its pixels arrive with a later ProcessPending.
 */
func (ts *TextureSystem) Acquire(name string) (*metadata.Texture, error) {
	return ts.acquire(name, "", DefaultTextureOptions)
}

// AcquireFromPath is Acquire for a file outside the texture directory.
func (ts *TextureSystem) AcquireFromPath(name, path string, options TextureOptions) (*metadata.Texture, error) {
	return ts.acquire(name, path, options)
}

func (ts *TextureSystem) acquire(name, path string, options TextureOptions) (*metadata.Texture, error) {
	if e, ok := ts.textures[name]; ok {
		return e.texture, nil
	}
	if uint32(len(ts.textures)) >= ts.Config.MaxTextureCount {
		return nil, fmt.Errorf("texture system is full (%d textures), cannot register %s", ts.Config.MaxTextureCount, name)
	}

	t := metadata.NewTexture(name)
	t.Path = path
	t.Mipmaps = options.Mipmaps
	if !options.Mipmaps {
		t.FilterMinify = metadata.TextureFilterModeLinear
	}
	e := &textureEntry{texture: t, options: options}
	ts.textures[name] = e

	if err := ts.load(e, path); err != nil {
		delete(ts.textures, name)
		return nil, err
	}
	return t, nil
}

// Get returns a registered texture, loaded or not.
func (ts *TextureSystem) Get(name string) (*metadata.Texture, bool) {
	e, ok := ts.textures[name]
	if !ok {
		return nil, false
	}
	return e.texture, true
}

// Reload decodes path again for every texture backed by it. Returns the number
// of textures queued.
func (ts *TextureSystem) Reload(path string) int {
	n := 0
	for _, e := range ts.textures {
		if e.texture.Path != path {
			continue
		}
		if err := ts.load(e, path); err != nil {
			core.LogWarn("failed to queue reload of texture %s: %s", e.texture.Name, err)
			continue
		}
		n++
	}
	return n
}

// load decodes the image on a job worker and hands it to the render thread.
func (ts *TextureSystem) load(e *textureEntry, path string) error {
	t := e.texture
	params := &metadata.ImageResourceParams{FlipY: e.options.FlipY}

	return ts.jobSystem.Submit(JobTask{
		Name: "texture " + t.Name,
		OnStart: func(ctx context.Context) (interface{}, error) {
			if path != "" {
				return ts.assetManager.LoadPath(path, metadata.ResourceTypeImage, params)
			}
			return ts.assetManager.LoadAsset(t.Name, metadata.ResourceTypeImage, params)
		},
		OnComplete: func(ctx context.Context, result interface{}) {
			res := result.(*metadata.Resource)
			d := decodedTexture{texture: t, path: res.FullPath}
			if img, ok := res.Data.(*metadata.ImageResourceData); ok {
				d.image = img
			} else {
				d.err = fmt.Errorf("%w: %s is not an image", core.ErrUnsupportedAsset, res.FullPath)
			}
			ts.deliver(ctx, d)
		},
		OnFailure: func(ctx context.Context, err error) {
			ts.deliver(ctx, decodedTexture{texture: t, path: path, err: err})
		},
	})
}

func (ts *TextureSystem) deliver(ctx context.Context, d decodedTexture) {
	select {
	case ts.pending <- d:
	case <-ctx.Done():
	}
}

/**
 * @brief Uploads every image decoded since the last call. Must run on the
 * render thread. A failed decode is logged and leaves its texture unloaded.
 * @return The number of textures uploaded.
 */
func (ts *TextureSystem) ProcessPending() int {
	uploaded := 0
	for {
		select {
		case d := <-ts.pending:
			if ts.upload(d) {
				uploaded++
			}
		default:
			return uploaded
		}
	}
}

func (ts *TextureSystem) upload(d decodedTexture) bool {
	t := d.texture
	if d.err != nil {
		core.LogWarn("texture %s could not be loaded, drawing it untextured: %s", t.Name, d.err)
		return false
	}

	previousW, previousH := t.Width, t.Height
	t.Width = d.image.Width
	t.Height = d.image.Height
	t.ChannelCount = d.image.ChannelCount
	if err := ts.backend.TextureCreate(d.image.Pixels, t); err != nil {
		t.Width, t.Height = previousW, previousH
		core.LogWarn("texture %s could not be uploaded: %s", t.Name, err)
		return false
	}
	t.Path = d.path
	if t.Generation == metadata.InvalidGeneration {
		t.Generation = 0
	} else {
		t.Generation++
	}
	core.LogDebug("texture %s uploaded (%dx%d, generation %d)", t.Name, t.Width, t.Height, t.Generation)

	if ts.bus != nil {
		ts.bus.Fire(core.EventContext{
			Type: core.EVENT_CODE_TEXTURE_LOADED,
			Data: &core.AssetEvent{Name: t.Name, Path: t.Path},
		})
	}
	return true
}

// Shutdown destroys every uploaded texture. The job system must be shut down first.
func (ts *TextureSystem) Shutdown() error {
	for name, e := range ts.textures {
		if e.texture.IsLoaded() {
			ts.backend.TextureDestroy(e.texture)
		}
		delete(ts.textures, name)
	}
	return nil
}
