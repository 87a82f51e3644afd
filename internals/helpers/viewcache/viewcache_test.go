package viewcache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry() *Registry {
	return &Registry{sections: make(map[string]*atomic.Uint64)}
}

func TestRegistryBumpAndVersion(t *testing.T) {
	r := newTestRegistry()

	assert.Equal(t, uint64(0), r.Version(SectionEvents))
	r.Bump(SectionEvents)
	r.Bump(SectionEvents)
	assert.Equal(t, uint64(2), r.Version(SectionEvents))

	// section lain tidak ikut naik
	assert.Equal(t, uint64(0), r.Version(SectionGallery))
}

func TestRegistryConcurrentBump(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Bump(SectionArticles)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), r.Version(SectionArticles))
}
