package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangentorv/restaurant-booking/internal/config"
)

func cacheEnv(t *testing.T, cfg config.CacheConfig) (func(path string) *httptest.ResponseRecorder, *int64) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	var hits int64
	e := echo.New()
	e.GET("/v1/menu", func(c echo.Context) error {
		atomic.AddInt64(&hits, 1)
		return c.JSON(http.StatusOK, echo.Map{"items": []string{"soup"}})
	}, NewRedisCache(cfg, rdb))

	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}
	return do, &hits
}

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          30 * time.Second,
		KeyStrategy:  "route_query",
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

func TestRedisCacheMissThenHit(t *testing.T) {
	do, hits := cacheEnv(t, testCacheConfig())

	first := do("/v1/menu")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.EqualValues(t, 1, atomic.LoadInt64(hits))

	second := do("/v1/menu")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.EqualValues(t, 1, atomic.LoadInt64(hits), "handler must not run on a hit")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRedisCacheKeyedByQuery(t *testing.T) {
	do, hits := cacheEnv(t, testCacheConfig())

	do("/v1/menu")
	do("/v1/menu?lang=no")
	assert.EqualValues(t, 2, atomic.LoadInt64(hits), "different query strings get distinct entries")
}

func TestRedisCacheDisabledPassesThrough(t *testing.T) {
	cfg := testCacheConfig()
	cfg.Enabled = false
	do, hits := cacheEnv(t, cfg)

	do("/v1/menu")
	do("/v1/menu")
	assert.EqualValues(t, 2, atomic.LoadInt64(hits))
}

func TestEncodeDecodePayload(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`{"items":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsShort(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
}
