package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanupInterval_Default(t *testing.T) {
	t.Setenv("TOKEN_BLACKLIST_CLEANUP_HOURS", "")
	assert.Equal(t, 24*time.Hour, cleanupInterval())
}

func TestCleanupInterval_FromEnv(t *testing.T) {
	t.Setenv("TOKEN_BLACKLIST_CLEANUP_HOURS", "6")
	assert.Equal(t, 6*time.Hour, cleanupInterval())
}

func TestCleanupInterval_InvalidFallsBack(t *testing.T) {
	t.Setenv("TOKEN_BLACKLIST_CLEANUP_HOURS", "banyak")
	assert.Equal(t, 24*time.Hour, cleanupInterval())

	t.Setenv("TOKEN_BLACKLIST_CLEANUP_HOURS", "-3")
	assert.Equal(t, 24*time.Hour, cleanupInterval())
}
