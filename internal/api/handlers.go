package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	imagepkg "github.com/youruser/logostamp/internal/image"
)

// Handler serves the compose endpoint. Every request is handled on its own
// copies of the images; nothing is shared between requests.
type Handler struct {
	Client      *http.Client
	JPEGQuality int
	MaxBytes    int64 // caps the request body and each download; zero disables
}

var (
	errNoSource   = errors.New("no image source given")
	errManySource = errors.New("more than one logo source given")
)

// fetchError marks failures talking to a remote image host.
type fetchError struct{ err error }

func (e *fetchError) Error() string { return e.err.Error() }
func (e *fetchError) Unwrap() error { return e.err }

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// compose stamps the logo onto the background and returns a JPEG.
// The background comes from the "background" file or "background_url";
// the logo from exactly one of "logo", "logo_url" or "qr_text".
func (h *Handler) compose(c *gin.Context) {
	ctx := c.Request.Context()
	if h.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)
	}

	bg, err := h.formImage(ctx, c, "background", "background_url")
	if err != nil {
		fail(c, fmt.Errorf("background: %w", err))
		return
	}
	logo, err := h.formLogo(ctx, c)
	if err != nil {
		fail(c, fmt.Errorf("logo: %w", err))
		return
	}
	if removeBG, _ := strconv.ParseBool(c.PostForm("remove_bg")); removeBG {
		logo = imagepkg.RemoveBackground(logo, imagepkg.White(), imagepkg.DefaultKeyThreshold)
	}

	layout := imagepkg.DefaultLayout()
	if h.JPEGQuality > 0 {
		layout.Quality = h.JPEGQuality
	}
	out, p, err := imagepkg.Compose(bg, logo, layout)
	if err != nil {
		fail(c, err)
		return
	}

	buf := new(bytes.Buffer)
	if err := imagepkg.EncodeJPEG(buf, imagepkg.Flatten(out), layout.Quality); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Logo-Size", fmt.Sprintf("%dx%d", p.Size.X, p.Size.Y))
	c.Header("X-Logo-Offset", fmt.Sprintf("%d,%d", p.Offset.X, p.Offset.Y))
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 256
	if sizeStr := c.Query("size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v <= 0 || v > 2048 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and 2048"})
			return
		}
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) formLogo(ctx context.Context, c *gin.Context) (image.Image, error) {
	_, fileErr := c.FormFile("logo")
	sources := 0
	if fileErr == nil {
		sources++
	}
	if c.PostForm("logo_url") != "" {
		sources++
	}
	qrText := c.PostForm("qr_text")
	if qrText != "" {
		sources++
	}

	switch {
	case sources > 1:
		return nil, errManySource
	case qrText != "":
		return imagepkg.QRLogo(qrText, 512)
	default:
		return h.formImage(ctx, c, "logo", "logo_url")
	}
}

// formImage decodes the uploaded file named field, falling back to
// downloading the URL in urlField.
func (h *Handler) formImage(ctx context.Context, c *gin.Context, field, urlField string) (image.Image, error) {
	fh, err := c.FormFile(field)
	if err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return imagepkg.Decode(f)
	}
	if !errors.Is(err, http.ErrMissingFile) {
		return nil, err
	}

	url := c.PostForm(urlField)
	if url == "" {
		return nil, errNoSource
	}
	img, err := imagepkg.Download(ctx, h.Client, url, h.MaxBytes)
	if err != nil {
		return nil, &fetchError{err: err}
	}
	return img, nil
}

func fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var (
		fe       *fetchError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.As(err, &fe):
		status = http.StatusBadGateway
	}
	c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
