package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/orrery/engine/assets/loaders"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

const (
	TEXTURES_DIR = "textures"
	SHADERS_DIR  = "shaders"
	FONTS_DIR    = "fonts"
)

// Extensions tried, in order, when a texture is requested without one.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetChange is published when a known asset is written on disk.
type AssetChange struct {
	Path string
	Type metadata.ResourceType
}

type AssetManager struct {
	baseDir string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	watcher   *fsnotify.Watcher
	changes   chan AssetChange
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewAssetManager indexes every known asset under baseDir.
func NewAssetManager(baseDir string) (*AssetManager, error) {
	fi, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: asset directory %s", core.ErrAssetNotFound, baseDir)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("asset path %s is not a directory", baseDir)
	}

	am := &AssetManager{
		baseDir: filepath.Clean(baseDir),
		assets:  make(map[string]AssetInfo),
		loaders: make(map[metadata.ResourceType]Loader),
		changes: make(chan AssetChange, 64),
		done:    make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(metadata.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	if err := am.walk(am.baseDir, nil); err != nil {
		return nil, err
	}
	core.LogDebug("asset manager indexed %d assets under %s", am.Count(), am.baseDir)
	return am, nil
}

func (am *AssetManager) BaseDir() string {
	return am.baseDir
}

func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// Resolve finds the file backing a named asset of the given type.
// Textures may be named without extension.
func (am *AssetManager) Resolve(name string, resourceType metadata.ResourceType) (string, error) {
	var candidates []string
	switch resourceType {
	case metadata.ResourceTypeImage:
		base := filepath.Join(am.baseDir, TEXTURES_DIR, name)
		if filepath.Ext(name) != "" {
			candidates = append(candidates, base)
		}
		for _, ext := range imageExtensions {
			candidates = append(candidates, base+ext)
		}
	case metadata.ResourceTypeShader:
		candidates = append(candidates, filepath.Join(am.baseDir, SHADERS_DIR, name))
	case metadata.ResourceTypeBitmapFont:
		base := filepath.Join(am.baseDir, FONTS_DIR, name)
		if filepath.Ext(name) != ".fnt" {
			base += ".fnt"
		}
		candidates = append(candidates, base)
	default:
		return "", fmt.Errorf("%w: %s", core.ErrUnsupportedAsset, name)
	}

	am.mutex.RLock()
	defer am.mutex.RUnlock()
	for _, c := range candidates {
		if _, ok := am.assets[c]; ok {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q", core.ErrAssetNotFound, resourceType, name)
}

// LoadAsset loads a named asset using the appropriate loader.
// Safe for concurrent use.
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	path, err := am.Resolve(name, resourceType)
	if err != nil {
		return nil, err
	}
	return am.LoadPath(path, resourceType, params)
}

// LoadPath loads the file at path, which need not be indexed.
func (am *AssetManager) LoadPath(path string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	loader, ok := am.loaders[resourceType]
	if !ok {
		return nil, fmt.Errorf("%w: no loader registered for %s", core.ErrUnsupportedAsset, resourceType)
	}

	res, err := loader.Load(path, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       resourceType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()
	return res, nil
}

// Watch starts publishing changes of asset files on Changes.
func (am *AssetManager) Watch() error {
	if am.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	am.watcher = w
	if err := am.walk(am.baseDir, w); err != nil {
		w.Close()
		am.watcher = nil
		return err
	}

	am.wg.Add(1)
	go am.start()
	core.LogInfo("watching %s for asset changes", am.baseDir)
	return nil
}

// Changes delivers asset writes. Drained by the main thread.
func (am *AssetManager) Changes() <-chan AssetChange {
	return am.changes
}

func (am *AssetManager) Shutdown() error {
	am.closeOnce.Do(func() {
		close(am.done)
	})
	am.wg.Wait()
	return nil
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	defer am.watcher.Close()

	for {
		select {
		case e, ok := <-am.watcher.Events:
			if !ok {
				return
			}
			am.handleWatchEvent(e)

		case err, ok := <-am.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) handleWatchEvent(e fsnotify.Event) {
	if e.Op&fsnotify.Remove != 0 || e.Op&fsnotify.Rename != 0 {
		am.removeAsset(e.Name)
		return
	}
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	s, err := os.Stat(e.Name)
	if err != nil {
		return
	}
	if s.IsDir() {
		if e.Op&fsnotify.Create != 0 {
			if err := am.walk(e.Name, am.watcher); err != nil {
				core.LogWarn("failed to watch %s: %s", e.Name, err)
			}
		}
		return
	}

	assetType := am.handleFileEvent(e.Name)
	if assetType == metadata.ResourceTypeNone {
		return
	}
	select {
	case am.changes <- AssetChange{Path: e.Name, Type: assetType}:
	case <-am.done:
	default:
		core.LogWarn("asset change queue full, dropping %s", e.Name)
	}
}

// walk indexes every file under root and, with a watcher, watches every directory.
func (am *AssetManager) walk(root string, watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if watcher != nil {
				return watcher.Add(path)
			}
			return nil
		}
		am.handleFileEvent(path)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) metadata.ResourceType {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return assetType
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[path] = AssetInfo{
		Path: path,
		Type: assetType,
	}
	return assetType
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".frag", ".glsl":
		return metadata.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return metadata.ResourceTypeImage
	case ".fnt":
		return metadata.ResourceTypeBitmapFont
	default:
		return metadata.ResourceTypeNone
	}
}

// IsNotFound reports whether err means an asset is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, core.ErrAssetNotFound)
}
