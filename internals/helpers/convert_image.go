// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

const (
	maxImageWidth      = 1600
	defaultWebPQuality = 80
)

var allowedImageExt = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

// ConvertToWebP membaca upload gambar, perbaiki orientasi EXIF, resize bila
// lebih lebar dari maxImageWidth, lalu encode ulang ke WebP.
// Mengembalikan isi file + nama file baru berekstensi .webp.
func ConvertToWebP(fh *multipart.FileHeader) ([]byte, string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExt[ext]; !ok {
		return nil, "", fmt.Errorf("format gambar tidak didukung (pakai jpg/png/webp)")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("buka file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode gambar: %w", err)
	}

	img = downscale(img, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: defaultWebPQuality}); err != nil {
		return nil, "", fmt.Errorf("encode webp: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(fh.Filename), ext) + ".webp"
	return buf.Bytes(), name, nil
}

// downscale menjaga rasio; gambar yang sudah cukup kecil dikembalikan apa adanya.
func downscale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
