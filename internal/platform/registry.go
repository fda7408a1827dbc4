// Package platform looks up extension-to-type mappings in the OS-native MIME
// registry, with a local TTL cache and an optional shared Redis cache in
// front of it.
package platform

import (
	"context"
	"mime"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"git.uuxo.net/uuxo/mime-resolver/internal/metrics"
)

var log = logrus.New()

// SetLogger replaces the package-level logger.
func SetLogger(l *logrus.Logger) { log = l }

// notFoundMarker caches negative lookups so repeated misses never hit the
// registry again within the TTL.
const notFoundMarker = "\x00"

// Registry implements mimeutil.Platform on top of the Go mime package, which
// reads /etc/mime.types and its platform equivalents. Lookups may block on
// filesystem I/O the first time; results are memoized in memory and, when
// configured, shared through Redis. Safe for concurrent use.
type Registry struct {
	memoryCache *cache.Cache
	redisClient *redis.Client
	ttl         time.Duration
}

// Options configures the registry caches.
type Options struct {
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New creates a Registry. A Redis address that cannot be reached degrades to
// the memory cache with a warning.
func New(opts Options) *Registry {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	r := &Registry{
		memoryCache: cache.New(ttl, 10*time.Minute),
		ttl:         ttl,
	}

	if opts.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnf("Platform registry: Redis connection failed, using memory cache only: %v", err)
		} else {
			r.redisClient = client
			log.Infof("Platform registry: Redis cache initialized (%s)", opts.RedisAddr)
		}
	}

	return r
}

// TypeByExtension returns the registry's content type for a bare extension
// (leading dot optional). Parameters the registry attaches, like charset,
// are stripped.
func (r *Registry) TypeByExtension(ext string) (string, bool) {
	key := "ext:" + strings.ToLower(strings.TrimPrefix(ext, "."))

	if v, found := r.memoryCache.Get(key); found {
		metrics.CacheHitsTotal.Inc()
		return fromCached(v.(string))
	}

	if v, ok := r.redisGet(key); ok {
		metrics.CacheHitsTotal.Inc()
		r.memoryCache.Set(key, v, cache.DefaultExpiration)
		return fromCached(v)
	}

	metrics.CacheMissesTotal.Inc()
	start := time.Now()
	ct := mime.TypeByExtension("." + strings.TrimPrefix(ext, "."))
	metrics.PlatformLookupDuration.Observe(time.Since(start).Seconds())

	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	r.store(key, toCached(ct))
	if ct == "" {
		return "", false
	}
	return ct, true
}

// ExtensionsForType returns the registry's extensions for a concrete content
// type, without leading dots. Unknown or malformed types yield nothing.
func (r *Registry) ExtensionsForType(contentType string) []string {
	key := "type:" + strings.ToLower(contentType)

	if v, found := r.memoryCache.Get(key); found {
		metrics.CacheHitsTotal.Inc()
		return splitCachedList(v.(string))
	}

	if v, ok := r.redisGet(key); ok {
		metrics.CacheHitsTotal.Inc()
		r.memoryCache.Set(key, v, cache.DefaultExpiration)
		return splitCachedList(v)
	}

	metrics.CacheMissesTotal.Inc()
	start := time.Now()
	raw, err := mime.ExtensionsByType(contentType)
	metrics.PlatformLookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		raw = nil
	}

	extensions := make([]string, 0, len(raw))
	for _, e := range raw {
		extensions = append(extensions, strings.TrimPrefix(e, "."))
	}

	r.store(key, strings.Join(extensions, ","))
	return extensions
}

func (r *Registry) redisGet(key string) (string, bool) {
	if r.redisClient == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := r.redisClient.Get(ctx, "mime:"+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (r *Registry) store(key, value string) {
	r.memoryCache.Set(key, value, cache.DefaultExpiration)
	if r.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.redisClient.Set(ctx, "mime:"+key, value, r.ttl).Err(); err != nil {
			log.Debugf("Platform registry: Redis store failed for %s: %v", key, err)
		}
	}
}

func toCached(ct string) string {
	if ct == "" {
		return notFoundMarker
	}
	return ct
}

func fromCached(v string) (string, bool) {
	if v == notFoundMarker {
		return "", false
	}
	return v, true
}

func splitCachedList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}
