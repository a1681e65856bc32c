package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/vfg2006/publimais-api/pkg/apiErrors"
	"github.com/vfg2006/publimais-api/pkg/log"
)

const defaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter mantém um limitador por IP de origem e descarta os IPs ociosos
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	trusted   []netip.Prefix
	now       func() time.Time
}

type LimiterOption func(*IPRateLimiter)

// WithTrustedProxies aceita IPs ou CIDRs dos proxies cujo X-Forwarded-For é confiável
func WithTrustedProxies(proxies ...string) LimiterOption {
	return func(l *IPRateLimiter) {
		for _, proxy := range proxies {
			proxy = strings.TrimSpace(proxy)
			if proxy == "" {
				continue
			}
			if prefix, err := netip.ParsePrefix(proxy); err == nil {
				l.trusted = append(l.trusted, prefix.Masked())
				continue
			}
			if addr, err := netip.ParseAddr(proxy); err == nil {
				l.trusted = append(l.trusted, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
				continue
			}
			log.L.WithField("proxy", proxy).Warn("Proxy confiável inválido ignorado")
		}
	}
}

// WithIdleTTL define por quanto tempo um IP sem requisições continua em memória
func WithIdleTTL(ttl time.Duration) LimiterOption {
	return func(l *IPRateLimiter) {
		if ttl > 0 {
			l.idleTTL = ttl
		}
	}
}

func NewIPRateLimiter(rps float64, burst int, opts ...LimiterOption) *IPRateLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	l := &IPRateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  defaultIdleTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep precisa ser chamado com mu travado
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

// Allow consome um token do IP informado
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

// Size devolve quantos IPs estão sendo acompanhados
func (l *IPRateLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

func (l *IPRateLimiter) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP só consulta o X-Forwarded-For quando a conexão vem de um proxy confiável;
// nesse caso devolve o endereço mais à direita que não pertence a um proxy
func (l *IPRateLimiter) ClientIP(r *http.Request) string {
	remote := remoteHost(r)
	if !l.isTrusted(remote) {
		return remote
	}

	forwarded := r.Header.Values("X-Forwarded-For")
	hops := strings.Split(strings.Join(forwarded, ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !l.isTrusted(hop) {
			return hop
		}
	}
	return remote
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejeita com 429 quando o IP excede o limite
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(limiter.ClientIP(r)) {
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Muitas requisições, tente novamente em instantes", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
