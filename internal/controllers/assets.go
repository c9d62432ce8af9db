package controllers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	placeholderWidth  = 480
	placeholderHeight = 360
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true}

var (
	placeholderBackground = color.RGBA{R: 0xdb, G: 0xea, B: 0xfe, A: 0xff}
	placeholderInk        = color.RGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff}
)

// AssetController serves files from the static directory. Images that are
// missing are replaced by a generated placeholder so pages never show a
// broken image.
type AssetController struct {
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string][]byte
}

func NewAssetController(dir string, logger *zap.Logger) *AssetController {
	return &AssetController{dir: dir, logger: logger, cache: make(map[string][]byte)}
}

func (c *AssetController) Serve(ctx echo.Context) error {
	name := path.Clean("/" + ctx.Param("*"))
	full := filepath.Join(c.dir, filepath.FromSlash(name))

	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		return ctx.File(full)
	}

	if !imageExts[strings.ToLower(path.Ext(name))] {
		return echo.ErrNotFound
	}

	data, err := c.placeholder(path.Base(name))
	if err != nil {
		c.logger.Error("placeholder image failed", zap.String("asset", name), zap.Error(err))
		return echo.ErrNotFound
	}
	ctx.Response().Header().Set("Cache-Control", "no-cache")
	return ctx.Blob(http.StatusOK, "image/png", data)
}

func (c *AssetController) placeholder(label string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.cache[label]; ok {
		return data, nil
	}

	data, err := renderPlaceholder(label, placeholderWidth, placeholderHeight)
	if err != nil {
		return nil, err
	}
	c.cache[label] = data
	return data, nil
}

// renderPlaceholder draws label centred on a flat background.
func renderPlaceholder(label string, width, height int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(placeholderInk), Face: face}
	textWidth := d.MeasureString(label).Ceil()
	x := (width - textWidth) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.P(x, height/2+face.Ascent/2)
	d.DrawString(label)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
