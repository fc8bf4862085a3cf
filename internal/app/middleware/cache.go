package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cacheEntry é uma resposta guardada em memória
type cacheEntry struct {
	Content     []byte
	ContentType string
	StatusCode  int
	CreatedAt   time.Time
	Expiration  time.Time
}

var (
	memoryCache   = make(map[string]*cacheEntry)
	memoryCacheMu sync.RWMutex
)

// CacheConfig configura o cache de respostas GET
type CacheConfig struct {
	TTL     time.Duration
	KeyFunc func(*gin.Context) string
}

// DefaultCacheConfig é a configuração padrão
var DefaultCacheConfig = CacheConfig{
	TTL:     1 * time.Minute,
	KeyFunc: defaultKeyFunc,
}

// defaultKeyFunc gera a chave a partir do caminho e da query string
func defaultKeyFunc(c *gin.Context) string {
	url := c.Request.URL.Path
	if c.Request.URL.RawQuery != "" {
		url += "?" + c.Request.URL.RawQuery
	}

	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

// responseWriter captura o corpo escrito pelo handler
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache guarda respostas GET com sucesso pelo TTL configurado
func Cache(config ...CacheConfig) gin.HandlerFunc {
	var cfg CacheConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultCacheConfig
	}

	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheConfig.TTL
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = defaultKeyFunc
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)

		memoryCacheMu.RLock()
		entry, exists := memoryCache[key]
		memoryCacheMu.RUnlock()

		if exists && time.Now().Before(entry.Expiration) {
			c.Header("X-Cache", "HIT")
			c.Data(entry.StatusCode, entry.ContentType, entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			now := time.Now()
			memoryCacheMu.Lock()
			memoryCache[key] = &cacheEntry{
				Content:     writer.body.Bytes(),
				ContentType: writer.Header().Get("Content-Type"),
				StatusCode:  c.Writer.Status(),
				CreatedAt:   now,
				Expiration:  now.Add(cfg.TTL),
			}
			memoryCacheMu.Unlock()
		}
	}
}

// CacheByParams usa os parâmetros de rota informados na chave
func CacheByParams(ttl time.Duration, params ...string) gin.HandlerFunc {
	return Cache(CacheConfig{
		TTL: ttl,
		KeyFunc: func(c *gin.Context) string {
			url := c.Request.URL.Path
			for _, p := range params {
				url += ":" + c.Param(p)
			}

			hash := md5.Sum([]byte(url))
			return hex.EncodeToString(hash[:])
		},
	})
}

// PurgeCache descarta todas as respostas guardadas
func PurgeCache() {
	memoryCacheMu.Lock()
	memoryCache = make(map[string]*cacheEntry)
	memoryCacheMu.Unlock()
}

// CacheStats devolve o total de entradas e quantas já expiraram
func CacheStats() (total int, expired int) {
	memoryCacheMu.RLock()
	defer memoryCacheMu.RUnlock()

	now := time.Now()
	total = len(memoryCache)
	for _, entry := range memoryCache {
		if now.After(entry.Expiration) {
			expired++
		}
	}

	return total, expired
}

// Limpeza periódica de entradas expiradas
func init() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()
			memoryCacheMu.Lock()
			for key, entry := range memoryCache {
				if now.After(entry.Expiration) {
					delete(memoryCache, key)
				}
			}
			memoryCacheMu.Unlock()
		}
	}()
}
