// Package render draws the pregame, intermission and final-score cards that
// accompany some notifications.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

const (
	cardWidth   = 640
	cardHeight  = 360
	marginX     = 32
	titleY      = 56
	subtitleY   = 84
	firstLineY  = 132
	lineSpacing = 22
	maxLines    = 10
)

var (
	background = color.RGBA{R: 0x00, G: 0x20, B: 0x5b, A: 0xff}
	foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	accent     = color.RGBA{R: 0xa2, G: 0xaa, B: 0xad, A: 0xff}
)

// CardRenderer writes PNG cards into Dir, one file per game and kind.
type CardRenderer struct {
	Dir  string
	Face font.Face
}

// NewCardRenderer returns a renderer using the built-in bitmap face.
func NewCardRenderer(dir string) *CardRenderer {
	return &CardRenderer{Dir: dir, Face: basicfont.Face7x13}
}

// Render draws req and returns the written file path.
func (r *CardRenderer) Render(ctx context.Context, req notification.GraphicRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.Dir == "" {
		return "", fmt.Errorf("render card: output directory not configured")
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create graphics dir: %w", err)
	}

	img := r.draw(req)
	path := filepath.Join(r.Dir, fmt.Sprintf("%d-%s.png", req.GameID, req.Kind))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create card: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("encode card: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close card: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("publish card: %w", err)
	}
	return path, nil
}

func (r *CardRenderer) draw(req notification.GraphicRequest) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	// accent rule under the header
	rule := image.Rect(marginX, subtitleY+16, cardWidth-marginX, subtitleY+18)
	draw.Draw(img, rule, &image.Uniform{C: accent}, image.Point{}, draw.Src)

	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	writeText(img, face, foreground, marginX, titleY, req.Title)
	writeText(img, face, accent, marginX, subtitleY, req.Subtitle)

	lines := req.Lines
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		writeText(img, face, foreground, marginX, firstLineY+i*lineSpacing, line)
	}
	return img
}

func writeText(img draw.Image, face font.Face, c color.Color, x, y int, text string) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(cardText(text))
}

// asciiPunct maps typographic punctuation used in messages onto the ASCII
// range covered by basicfont.
var asciiPunct = strings.NewReplacer(
	"\u2013", "-", "\u2014", "-", "\u2212", "-",
	"\u2018", "'", "\u2019", "'", "\u201c", `"`, "\u201d", `"`,
	"\u2026", "...", "\u00a0", " ",
)

// cardText folds text to printable ASCII: accents are stripped ("Stützle"
// becomes "Stutzle") and anything left outside ASCII becomes '?'.
func cardText(text string) string {
	text = asciiPunct.Replace(norm.NFD.String(text))
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
