// file: internals/helpers/viewcache/viewcache.go
package viewcache

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

// Registry mencatat versi per-section halaman publik. Setiap mutasi sukses
// menaikkan versi section terkait; pembaca (CDN/frontend) membandingkan versi
// untuk tahu kapan harus re-fetch. Tidak ada jaminan transaksional lintas
// section, hanya "section ini berubah".
type Registry struct {
	mu       sync.Mutex
	sections map[string]*atomic.Uint64
}

var defaultRegistry = &Registry{sections: make(map[string]*atomic.Uint64)}

// Section names dipakai konsisten oleh controller.
const (
	SectionEvents   = "events"
	SectionArticles = "articles"
	SectionGallery  = "gallery"
	SectionSettings = "settings"
)

func (r *Registry) counter(section string) *atomic.Uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sections[section]
	if !ok {
		c = &atomic.Uint64{}
		r.sections[section] = c
	}
	return c
}

// Bump menandai semua view yang menampilkan section ini sebagai stale.
func (r *Registry) Bump(section string) {
	r.counter(section).Add(1)
}

// Version mengembalikan versi section saat ini.
func (r *Registry) Version(section string) uint64 {
	return r.counter(section).Load()
}

func Bump(section string)           { defaultRegistry.Bump(section) }
func Version(section string) uint64 { return defaultRegistry.Version(section) }

// SetHeader menempelkan X-View-Version pada response list publik.
func SetHeader(c *fiber.Ctx, section string) {
	c.Set("X-View-Version", strconv.FormatUint(Version(section), 10))
}
