package systems

import (
	"fmt"

	"github.com/spaghettifunk/orrery/engine/assets"
	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type FontSystem struct {
	fonts map[string]*metadata.FontData
	texts []*metadata.UIText
	// subsystems
	textureSystem  *TextureSystem
	geometrySystem *GeometrySystem
	assetManager   *assets.AssetManager
}

func NewFontSystem(ts *TextureSystem, gs *GeometrySystem, am *assets.AssetManager) (*FontSystem, error) {
	return &FontSystem{
		fonts:          make(map[string]*metadata.FontData),
		textureSystem:  ts,
		geometrySystem: gs,
		assetManager:   am,
	}, nil
}

/**
 * @brief Loads a bitmap font from the font asset directory. The atlas texture
 * arrives asynchronously like any other texture.
 *
 * @param name The font name, which is the .fnt file name without extension.
 * @return The loaded font.
 */
func (fs *FontSystem) LoadBitmapFont(name string) (*metadata.FontData, error) {
	if f, ok := fs.fonts[name]; ok {
		return f, nil
	}

	res, err := fs.assetManager.LoadAsset(name, metadata.ResourceTypeBitmapFont, nil)
	if err != nil {
		return nil, err
	}
	data := res.Data.(*metadata.BitmapFontResourceData)
	if len(data.Pages) == 0 {
		return nil, fmt.Errorf("bitmap font %s has no pages", name)
	}
	if len(data.Pages) > 1 {
		core.LogWarn("bitmap font %s has %d pages, only the first is used", name, len(data.Pages))
	}

	atlas, err := fs.textureSystem.AcquireFromPath("font."+name, data.Pages[0].File, TextureOptions{})
	if err != nil {
		return nil, err
	}
	data.Data.Atlas = atlas
	fs.fonts[name] = data.Data
	core.LogDebug("bitmap font %s loaded (%d glyphs)", name, len(data.Data.Glyphs))
	return data.Data, nil
}

func (fs *FontSystem) Get(name string) (*metadata.FontData, bool) {
	f, ok := fs.fonts[name]
	return f, ok
}

// CreateText lays out text with the named font at a position in pixels from
// the top left corner of the window.
func (fs *FontSystem) CreateText(fontName, text string, position math.Vec2, colour math.Vec4) (*metadata.UIText, error) {
	font, ok := fs.fonts[fontName]
	if !ok {
		return nil, fmt.Errorf("%w: font %s is not loaded", core.ErrAssetNotFound, fontName)
	}
	t := &metadata.UIText{
		Position: position,
		Colour:   colour,
		Font:     font,
	}
	if err := fs.SetText(t, text); err != nil {
		return nil, err
	}
	fs.texts = append(fs.texts, t)
	return t, nil
}

// SetText rebuilds the quads of t when the text changes.
func (fs *FontSystem) SetText(t *metadata.UIText, text string) error {
	if t.Geometry != nil && t.Text == text {
		return nil
	}
	t.Text = text
	vertices, indices := BuildTextGeometry(t.Font, text)
	if len(vertices) == 0 {
		return nil
	}
	if t.Geometry == nil {
		g, err := fs.geometrySystem.AcquireFromConfig(metadata.GeometryConfig{
			Name:     fmt.Sprintf("text.%p", t),
			Topology: metadata.GeometryTopologyTriangles,
			Vertices: vertices,
			Indices:  indices,
		})
		if err != nil {
			return err
		}
		t.Geometry = g
		return nil
	}
	return fs.geometrySystem.Update(t.Geometry, vertices, indices)
}

/**
 * @brief Builds one textured quad per glyph, origin at the top left corner of
 * the first line, Y pointing down. Kerning between consecutive glyphs is
 * applied and newlines start a new line. Glyphs missing from the font are
 * skipped.
 */
func BuildTextGeometry(font *metadata.FontData, text string) ([]math.Vertex3D, []uint32) {
	runes := []rune(text)
	vertices := make([]math.Vertex3D, 0, len(runes)*4)
	indices := make([]uint32, 0, len(runes)*6)

	atlasW := float32(font.AtlasSizeX)
	atlasH := float32(font.AtlasSizeY)
	var x, y float32

	for i, r := range runes {
		if r == '\n' {
			x = 0
			y += float32(font.LineHeight)
			continue
		}
		g, ok := font.Glyphs[int32(r)]
		if !ok {
			continue
		}

		minX := x + float32(g.XOffset)
		minY := y + float32(g.YOffset)
		maxX := minX + float32(g.Width)
		maxY := minY + float32(g.Height)
		tminX := float32(g.X) / atlasW
		tmaxX := float32(g.X+g.Width) / atlasW
		tminY := float32(g.Y) / atlasH
		tmaxY := float32(g.Y+g.Height) / atlasH

		base := uint32(len(vertices))
		vertices = append(vertices,
			math.Vertex3D{Position: math.Vec3{X: minX, Y: minY}, Texcoord: math.Vec2{X: tminX, Y: tminY}},
			math.Vertex3D{Position: math.Vec3{X: maxX, Y: maxY}, Texcoord: math.Vec2{X: tmaxX, Y: tmaxY}},
			math.Vertex3D{Position: math.Vec3{X: minX, Y: maxY}, Texcoord: math.Vec2{X: tminX, Y: tmaxY}},
			math.Vertex3D{Position: math.Vec3{X: maxX, Y: minY}, Texcoord: math.Vec2{X: tmaxX, Y: tminY}},
		)
		indices = append(indices, base, base+1, base+2, base, base+3, base+1)

		advance := float32(g.XAdvance)
		if i+1 < len(runes) {
			advance += float32(font.Kernings[[2]int32{int32(r), int32(runes[i+1])}])
		}
		x += advance
	}
	return vertices, indices
}

// Texts returns every text created so far, in creation order.
func (fs *FontSystem) Texts() []*metadata.UIText {
	return fs.texts
}

func (fs *FontSystem) Shutdown() error {
	fs.texts = nil
	fs.fonts = make(map[string]*metadata.FontData)
	return nil
}
