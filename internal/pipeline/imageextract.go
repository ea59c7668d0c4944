package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/lysachain/logokit/internal/fileutil"
)

// Sentinel errors for per-image failures. They never abort a document.
var (
	ErrInvalidPayload = errors.New("invalid base64 payload")
	ErrInvalidImageID = errors.New("invalid image id")
	ErrImageWrite     = errors.New("writing image failed")
)

// Extracted image naming.
const (
	ImageFilePrefix = "logo_part_"
	ImageFileExt    = ".png"
)

// dataURIPrefix is the literal href prefix of an inline PNG.
const dataURIPrefix = `xlink:href="data:image/png;base64,`

// embeddedImagePattern matches <image id="ID" ...xlink:href="data:image/png;base64, PAYLOAD">.
// Groups: 1=id, 2=attributes between id and href, 3=payload.
var embeddedImagePattern = regexp.MustCompile(`<image id="([^"]+)"([^>]*?)xlink:href="data:image/png;base64,\s*([^"]+)"`)

// EmbeddedImage is one inline PNG found in a document.
type EmbeddedImage struct {
	ID         string
	Attributes string
	Payload    string
}

// Filename returns the file name the image is extracted to.
func (img EmbeddedImage) Filename() string {
	return ImageFilename(img.ID)
}

// ImageFilename returns logo_part_<id>.png.
func ImageFilename(id string) string {
	return ImageFilePrefix + id + ImageFileExt
}

// FindEmbeddedImages returns every embedded image in content, in document order.
func FindEmbeddedImages(content string) []EmbeddedImage {
	matches := embeddedImagePattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	images := make([]EmbeddedImage, 0, len(matches))
	for _, m := range matches {
		images = append(images, EmbeddedImage{ID: m[1], Attributes: m[2], Payload: m[3]})
	}
	return images
}

// DecodePayload decodes a standard base64 payload. Whitespace anywhere in
// the payload is ignored, since editors wrap long data URIs.
func DecodePayload(payload string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, payload)

	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return data, nil
}

// ReplaceDataURI rewrites the image's data URI href to ref.
// It tries the "base64, PAYLOAD" form first, then "base64,PAYLOAD", and
// reports false when neither occurs verbatim in content.
func ReplaceDataURI(content string, img EmbeddedImage, ref string) (string, bool) {
	old := dataURIPrefix + " " + img.Payload + `"`
	if !strings.Contains(content, old) {
		old = dataURIPrefix + img.Payload + `"`
	}
	if !strings.Contains(content, old) {
		return content, false
	}
	return strings.ReplaceAll(content, old, `xlink:href="`+ref+`"`), true
}

// ImageWriter persists decoded image bytes under a file name.
type ImageWriter interface {
	WriteImage(filename string, data []byte) error
}

// ImageResult records the outcome for one embedded image.
type ImageResult struct {
	ID       string
	Filename string
	Ref      string // rewritten reference; empty unless Replaced
	Size     int    // decoded byte count
	Written  bool
	Replaced bool
	Err      error // decode, id or write failure
}

// ImageExtractor defines the contract for moving embedded images out of a document.
type ImageExtractor interface {
	ExtractImages(ctx context.Context, content string) (string, []ImageResult, error)
}

// ImageExtraction writes every embedded image through Writer and rewrites
// its href to RefDir/<filename>.
type ImageExtraction struct {
	Writer ImageWriter
	RefDir string // slash path from the document to the image directory; "" = same directory
}

// ExtractImages processes matches in document order. Per-image failures are
// recorded in the results and processing continues; only cancellation
// returns an error.
func (e *ImageExtraction) ExtractImages(ctx context.Context, content string) (string, []ImageResult, error) {
	images := FindEmbeddedImages(content)
	if len(images) == 0 {
		return content, nil, nil
	}

	results := make([]ImageResult, 0, len(images))
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return content, results, err
		}

		res := ImageResult{ID: img.ID, Filename: img.Filename()}

		if err := fileutil.ValidateNameComponent(img.ID); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrInvalidImageID, err)
			results = append(results, res)
			continue
		}

		data, err := DecodePayload(img.Payload)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Size = len(data)

		if err := e.Writer.WriteImage(res.Filename, data); err != nil {
			res.Err = fmt.Errorf("%w: %v", ErrImageWrite, err)
			results = append(results, res)
			continue
		}
		res.Written = true

		ref := JoinRef(e.RefDir, res.Filename)
		if updated, ok := ReplaceDataURI(content, img, ref); ok {
			content = updated
			res.Ref = ref
			res.Replaced = true
		}
		results = append(results, res)
	}

	return content, results, nil
}
