package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fzipp/bmfont"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type BitmapFontLoader struct{}

// Load imports an AngelCode .fnt descriptor. Page file names are resolved
// relative to the descriptor.
func (fl *BitmapFontLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, path)
		}
		return nil, err
	}

	data, err := fl.importFNTFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to import bitmap font %s: %w", path, err)
	}

	return &metadata.Resource{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FullPath: path,
		Type:     metadata.ResourceTypeBitmapFont,
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) importFNTFile(fntFileName string) (*metadata.BitmapFontResourceData, error) {
	font, err := bmfont.Load(fntFileName)
	if err != nil {
		return nil, err
	}
	desc := font.Descriptor

	out := &metadata.BitmapFontResourceData{
		Data: &metadata.FontData{
			Face:       desc.Info.Face,
			Size:       uint32(desc.Info.Size),
			LineHeight: int32(desc.Common.LineHeight),
			Baseline:   int32(desc.Common.Base),
			AtlasSizeX: int32(desc.Common.ScaleW),
			AtlasSizeY: int32(desc.Common.ScaleH),
			Glyphs:     make(map[int32]*metadata.FontGlyph, len(desc.Chars)),
			Kernings:   make(map[[2]int32]int16, len(desc.Kerning)),
		},
	}

	dir := filepath.Dir(fntFileName)
	for _, p := range desc.Pages {
		out.Pages = append(out.Pages, &metadata.BitmapFontPage{
			ID:   int8(p.ID),
			File: filepath.Join(dir, p.File),
		})
	}

	for _, g := range desc.Chars {
		out.Data.Glyphs[int32(g.ID)] = &metadata.FontGlyph{
			Codepoint: int32(g.ID),
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		}
	}

	for p, k := range desc.Kerning {
		out.Data.Kernings[[2]int32{int32(p.First), int32(p.Second)}] = int16(k.Amount)
	}

	return out, nil
}
