// file: internals/helpers/oss/oss_client.go
package oss

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSService membungkus bucket tunggal untuk aset gambar situs.
type OSSService struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	Prefix          string // mis. "images"
}

func NewFromEnv() (*OSSService, error) {
	s := &OSSService{
		Endpoint:        getEnv("ALI_OSS_ENDPOINT"),
		AccessKeyID:     getEnv("ALI_OSS_ACCESS_KEY_ID"),
		AccessKeySecret: getEnv("ALI_OSS_ACCESS_KEY_SECRET"),
		BucketName:      getEnv("ALI_OSS_BUCKET"),
		Prefix:          getEnv("ALI_OSS_PREFIX"),
	}
	if s.Endpoint == "" || s.AccessKeyID == "" || s.AccessKeySecret == "" || s.BucketName == "" {
		return nil, fmt.Errorf("oss: konfigurasi ALI_OSS_* belum lengkap")
	}
	return s, nil
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func (s *OSSService) bucket() (*alioss.Bucket, error) {
	client, err := alioss.New(s.Endpoint, s.AccessKeyID, s.AccessKeySecret)
	if err != nil {
		return nil, err
	}
	return client.Bucket(s.BucketName)
}

// UploadReader menyimpan objek dan mengembalikan public URL-nya.
// ctx dipakai sebagai guard timeout di sisi caller; SDK sendiri sinkron.
func (s *OSSService) UploadReader(ctx context.Context, filename string, r io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := s.bucket()
	if err != nil {
		return "", err
	}
	key := s.buildObjectKey(filename)
	opts := []alioss.Option{}
	if contentType != "" {
		opts = append(opts, alioss.ContentType(contentType))
	}
	if err := b.PutObject(key, r, opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := s.bucket()
	if err != nil {
		return err
	}
	return b.DeleteObject(key)
}

// DeleteByPublicURL: hapus objek berdasarkan URL publiknya (best-effort,
// dipakai pada two-phase delete artikel/galeri).
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fmt.Errorf("empty public url")
	}
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return fmt.Errorf("extract key: %w", err)
	}
	return s.DeleteObject(ctx, key)
}

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// ExtractKeyFromPublicURL mengambil object key dari URL publik.
// URL yang tidak bisa diurai mengembalikan error; caller memutuskan
// apakah itu fatal (untuk cleanup aset: tidak).
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	if publicURL == "" {
		return "", fmt.Errorf("empty url")
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		base = strings.TrimRight(base, "/") + "/"
		if strings.HasPrefix(publicURL, base) {
			return strings.TrimPrefix(publicURL, base), nil
		}
	}
	u := publicURL
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	} else {
		return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
	}
	if i := strings.Index(u, "/"); i >= 0 && i+1 < len(u) {
		return u[i+1:], nil
	}
	return "", fmt.Errorf("cannot extract key from url: %s", publicURL)
}

/* =======================================================================
   Misc utils
======================================================================= */

func (s *OSSService) buildObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")
	rand6 := randHex(3)

	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s_%s_%s%s", prefix, slugify(base), ts, rand6, ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "—", "-", "–", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
