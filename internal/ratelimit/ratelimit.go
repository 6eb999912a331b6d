// Package ratelimit, login uçlarını kaba kuvvete karşı IP başına sınırlar.
package ratelimit

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type Limiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	limit rate.Limit
	burst int
}

// New: saniyede r istek, en fazla burst taşma.
func New(r rate.Limit, burst int) *Limiter {
	return &Limiter{
		perIP: make(map[string]*rate.Limiter),
		limit: r,
		burst: burst,
	}
}

func (l *Limiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.perIP[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.perIP[ip] = lim
	}
	return lim
}

// Middleware, sınırı aşan IP'lere 429 döner.
func (l *Limiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.get(c.IP()).Allow() {
			return fiber.NewError(fiber.StatusTooManyRequests, "Çok fazla deneme, lütfen biraz bekleyin")
		}
		return c.Next()
	}
}
