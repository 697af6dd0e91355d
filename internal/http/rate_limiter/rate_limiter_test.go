package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestGetVisitor_SharedPerIP(t *testing.T) {
	Configure(1, 2)
	t.Cleanup(CleanupAllVisitors)

	a := GetVisitor("10.0.0.1")
	assert.Same(t, a, GetVisitor("10.0.0.1"))
	assert.NotSame(t, a, GetVisitor("10.0.0.2"))
}

func TestGetVisitor_Burst(t *testing.T) {
	Configure(rate.Every(time.Hour), 2)
	t.Cleanup(CleanupAllVisitors)

	l := GetVisitor("10.0.0.3")
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
}

func TestEvictIdle(t *testing.T) {
	Configure(1, 1)
	t.Cleanup(CleanupAllVisitors)

	GetVisitor("10.0.0.4")
	mu.Lock()
	visitors["10.0.0.4"].lastSeen = time.Now().Add(-time.Hour)
	mu.Unlock()

	evictIdle(5 * time.Minute)

	mu.Lock()
	_, ok := visitors["10.0.0.4"]
	mu.Unlock()
	assert.False(t, ok)
}
