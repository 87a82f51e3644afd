package oss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeyFromPublicURL(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")

	key, err := ExtractKeyFromPublicURL("https://bucket.oss-ap-southeast-5.aliyuncs.com/images/kajian_20250101_0a1b2c.webp")
	require.NoError(t, err)
	assert.Equal(t, "images/kajian_20250101_0a1b2c.webp", key)

	// URL tanpa skema tidak bisa diurai
	_, err = ExtractKeyFromPublicURL("bukan-url")
	assert.Error(t, err)

	_, err = ExtractKeyFromPublicURL("")
	assert.Error(t, err)

	// URL tanpa path setelah host
	_, err = ExtractKeyFromPublicURL("https://bucket.aliyuncs.com")
	assert.Error(t, err)
}

func TestExtractKeyFromPublicURL_WithPublicBase(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.alarqam.or.id")

	key, err := ExtractKeyFromPublicURL("https://cdn.alarqam.or.id/images/foto.webp")
	require.NoError(t, err)
	assert.Equal(t, "images/foto.webp", key)
}

func TestPublicURL(t *testing.T) {
	t.Setenv("ALI_OSS_PUBLIC_BASE", "")
	s := &OSSService{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "alarqam"}
	assert.Equal(t,
		"https://alarqam.oss-ap-southeast-5.aliyuncs.com/images/x.webp",
		s.PublicURL("images/x.webp"))
	assert.Equal(t, "", s.PublicURL(""))
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "images"}
	key := s.buildObjectKey("Foto Kajian Сабту.JPG")
	assert.Regexp(t, `^images/[a-z0-9-]+_\d{8}_\d{6}_[0-9a-f]{6}\.jpg$`, key)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "foto-kajian", slugify("Foto Kajian"))
	assert.Equal(t, "file", slugify("???"))
	assert.Equal(t, "a-b", slugify("a_b"))
}
