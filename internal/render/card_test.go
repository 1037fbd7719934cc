package render

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

func TestRenderWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cards")
	r := NewCardRenderer(dir)

	path, err := r.Render(context.Background(), notification.GraphicRequest{
		Kind:     notification.GraphicFinal,
		GameID:   2026020101,
		Title:    "Final/OT",
		Subtitle: "BOS 2, TOR 3",
		Lines:    []string{"Shots: BOS 27, TOR 31", "", "TOR 1st – A. Matthews"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026020101-final.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, cardWidth, cfg.Width)
	assert.Equal(t, cardHeight, cfg.Height)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRenderDrawsText(t *testing.T) {
	r := NewCardRenderer(t.TempDir())
	blank := r.draw(notification.GraphicRequest{})
	withText := r.draw(notification.GraphicRequest{Title: "BOS @ TOR"})

	assert.NotEqual(t, blank.Pix, withText.Pix)
}

func TestRenderTruncatesLines(t *testing.T) {
	r := NewCardRenderer(t.TempDir())
	lines := make([]string, maxLines+5)
	for i := range lines {
		lines[i] = "line"
	}
	img := r.draw(notification.GraphicRequest{Lines: lines})
	assert.Equal(t, cardWidth, img.Bounds().Dx())
}

func TestRenderRequiresDir(t *testing.T) {
	_, err := (&CardRenderer{}).Render(context.Background(), notification.GraphicRequest{})
	assert.Error(t, err)
}

func TestRenderHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCardRenderer(t.TempDir()).Render(ctx, notification.GraphicRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCardTextFoldsToASCII(t *testing.T) {
	assert.Equal(t, "TOR 1st - 05:12 T. Stutzle", cardText("TOR 1st \u2013 05:12 T. St\u00fctzle"))
	assert.Equal(t, "Final - \"OT\"", cardText("Final \u2014 \u201cOT\u201d"))
	assert.Equal(t, "goal ?", cardText("goal \U0001F6A8"))
}

func TestRenderDrawsEnDashAsHyphen(t *testing.T) {
	r := NewCardRenderer(t.TempDir())
	dash := r.draw(notification.GraphicRequest{Lines: []string{"OT \u2013 07:54"}})
	hyphen := r.draw(notification.GraphicRequest{Lines: []string{"OT - 07:54"}})

	assert.Equal(t, hyphen.Pix, dash.Pix)
}
