package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrUploadsDisabled is returned when no image upload endpoint is configured.
var ErrUploadsDisabled = &APIError{Message: "Image uploads are not configured."}

// ImageHost posts avatar images to the external hosting service. The endpoint
// is ImgBB-compatible: a multipart "image" field in, JSON carrying the hosted
// URL out. Only the URL ever reaches the platform API.
type ImageHost struct {
	client *Client
}

// NewImageHost wraps the configured upload endpoint (key included in the
// URL). An empty endpoint returns nil; Upload on a nil host reports
// ErrUploadsDisabled.
func NewImageHost(uploadURL string, logger *logrus.Logger) *ImageHost {
	if uploadURL == "" {
		return nil
	}
	return &ImageHost{client: NewClient(uploadURL, logger)}
}

// Upload sends the image and returns its hosted URL.
func (h *ImageHost) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if h == nil {
		return "", ErrUploadsDisabled
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}

	payload, err := h.client.doRaw(ctx, http.MethodPost, "", &buf, w.FormDataContentType(), "")
	if err != nil {
		return "", err
	}

	var res struct {
		Success bool `json:"success"`
		Data    struct {
			DisplayURL string `json:"display_url"`
			URL        string `json:"url"`
		} `json:"data"`
	}
	if err := decode(payload, &res); err != nil {
		return "", err
	}
	url := res.Data.DisplayURL
	if url == "" {
		url = res.Data.URL
	}
	if url == "" {
		return "", &APIError{Message: "Failed to upload avatar image. Please try again."}
	}
	return url, nil
}
