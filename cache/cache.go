// Package cache holds rendered PNGs keyed by the chart document and
// the render parameters that produced them.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/url"
	"time"

	"github.com/bradfitz/gomemcache/memcache"

	ecache "github.com/dgryski/go-expirecache"
)

var (
	ErrTimeout  = errors.New("cache: timeout")
	ErrNotFound = errors.New("cache: not found")
)

// BytesCache stores rendered images. Set is fire-and-forget; a failed
// store only costs a re-render.
type BytesCache interface {
	Get(k string) ([]byte, error)
	Set(k string, v []byte, expire int32)
}

// RenderKey derives the cache key for one render request from the
// chart document and the parameter form.
func RenderKey(doc []byte, form url.Values) string {
	h := sha1.New()
	h.Write(doc)
	h.Write([]byte{0})
	h.Write([]byte(form.Encode()))
	return hex.EncodeToString(h.Sum(nil))
}

// NullCache stores nothing and never hits.
type NullCache struct{}

func (NullCache) Get(string) ([]byte, error) { return nil, ErrNotFound }
func (NullCache) Set(string, []byte, int32)  {}

// ExpireCache is an in-process cache with byte-size accounting.
type ExpireCache struct {
	ec *ecache.Cache
}

// NewExpireCache returns an in-process cache bounded to maxsize bytes.
func NewExpireCache(maxsize uint64) *ExpireCache {
	ec := ecache.New(maxsize)
	go ec.ApproximateCleaner(10 * time.Second)
	return &ExpireCache{ec: ec}
}

func (ec ExpireCache) Get(k string) ([]byte, error) {
	v, ok := ec.ec.Get(k)
	if !ok {
		return nil, ErrNotFound
	}
	return v.([]byte), nil
}

func (ec ExpireCache) Set(k string, v []byte, expire int32) {
	ec.ec.Set(k, v, uint64(len(v)), expire)
}

// MemcachedCache shares rendered images across instances.
type MemcachedCache struct {
	client  *memcache.Client
	timeout time.Duration
}

// NewMemcachedCache connects to the given memcached servers.
func NewMemcachedCache(servers []string) *MemcachedCache {
	return &MemcachedCache{
		client:  memcache.New(servers...),
		timeout: 50 * time.Millisecond,
	}
}

func (m *MemcachedCache) Get(k string) ([]byte, error) {
	hk := hashKey(k)
	done := make(chan bool, 1)

	var err error
	var item *memcache.Item

	go func() {
		item, err = m.client.Get(hk)
		done <- true
	}()

	select {
	case <-time.After(m.timeout):
		return nil, ErrTimeout
	case <-done:
	}

	if err != nil {
		if err == memcache.ErrCacheMiss {
			err = ErrNotFound
		}
		return nil, err
	}

	return item.Value, nil
}

func (m *MemcachedCache) Set(k string, v []byte, expire int32) {
	go m.client.Set(&memcache.Item{Key: hashKey(k), Value: v, Expiration: expire})
}

// memcached keys may not contain spaces or control characters, so keys
// are hashed before they hit the wire.
func hashKey(k string) string {
	key := sha1.Sum([]byte(k))
	return hex.EncodeToString(key[:])
}
