package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
)

// RateLimiterConfig define a taxa permitida por IP
type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration
}

// PerMinute monta a configuração a partir de requisições por minuto
func PerMinute(requests, burst int) RateLimiterConfig {
	return RateLimiterConfig{
		Rate:            rate.Limit(float64(requests) / 60.0),
		Burst:           burst,
		CleanupInterval: 5 * time.Minute,
	}
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limita requisições por IP de origem
type RateLimiter struct {
	config RateLimiterConfig
	logger ports.Logger

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter cria o limitador e inicia a limpeza periódica em background
func NewRateLimiter(config RateLimiterConfig, logger ports.Logger) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		logger:   logger,
		limiters: make(map[string]*ipLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop encerra a limpeza em background
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware responde 429 com Retry-After quando o IP excede a taxa
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.Header("Retry-After", strconv.Itoa(rl.retryAfter()))
			dto.AbortWithProblem(c, dto.TooManyRequestsProblem(c))
			return
		}

		c.Next()
	}
}

// Count retorna quantos IPs estão sendo acompanhados
func (rl *RateLimiter) Count() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = time.Now()

	return entry.limiter
}

// retryAfter estima em segundos quando um novo token estará disponível
func (rl *RateLimiter) retryAfter() int {
	if rl.config.Rate <= 0 {
		return 60
	}
	seconds := int(math.Ceil(1.0 / float64(rl.config.Rate)))
	return max(seconds, 1)
}

func (rl *RateLimiter) cleanupLoop() {
	interval := rl.config.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(2 * interval)
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup remove IPs sem acesso há mais de ttl
func (rl *RateLimiter) cleanup(ttl time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, entry := range rl.limiters {
		if now.Sub(entry.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}
