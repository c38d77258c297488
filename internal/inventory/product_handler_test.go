package inventory

import (
	"testing"

	"eczane-backend/internal/cache"

	"github.com/stretchr/testify/assert"
)

func TestInvalidateProductCache_NoopWithoutRedis(t *testing.T) {
	// Redis yapılandırılmamışken (Client nil) mutation handler'ları
	// panic'lemeden çalışmaya devam etmeli
	assert.Nil(t, cache.Client)
	assert.NotPanics(t, func() { invalidateProductCache() })
}
