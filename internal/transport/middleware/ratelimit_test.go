package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestMiddleware(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Transport Middleware Suite")
}

var _ = ginkgo.Describe("RateLimiter", func() {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	send := func(handler http.Handler, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	ginkgo.It("should pass requests under the limit", func() {
		handler := NewRateLimiter(3, time.Minute).Handler(okHandler)

		for i := 0; i < 3; i++ {
			gomega.Expect(send(handler, "203.0.113.1").Code).To(gomega.Equal(http.StatusOK))
		}
	})

	ginkgo.It("should reject requests over the limit with a retry hint", func() {
		handler := NewRateLimiter(2, time.Minute).Handler(okHandler)

		send(handler, "203.0.113.1")
		send(handler, "203.0.113.1")
		rec := send(handler, "203.0.113.1")

		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusTooManyRequests))
		gomega.Expect(rec.Header().Get("Retry-After")).ToNot(gomega.BeEmpty())
		gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Too many requests"))
	})

	ginkgo.It("should count clients independently", func() {
		handler := NewRateLimiter(1, time.Minute).Handler(okHandler)

		gomega.Expect(send(handler, "203.0.113.1").Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(send(handler, "203.0.113.2").Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(send(handler, "203.0.113.1").Code).To(gomega.Equal(http.StatusTooManyRequests))
	})

	ginkgo.It("should reset the counter after the window passes", func() {
		limiter := NewRateLimiter(1, time.Minute)
		now := time.Now()

		allowed, _ := limiter.allow("203.0.113.1", now)
		gomega.Expect(allowed).To(gomega.BeTrue())

		allowed, retryAfter := limiter.allow("203.0.113.1", now)
		gomega.Expect(allowed).To(gomega.BeFalse())
		gomega.Expect(retryAfter).To(gomega.BeNumerically(">", 0))

		allowed, _ = limiter.allow("203.0.113.1", now.Add(2*time.Minute))
		gomega.Expect(allowed).To(gomega.BeTrue())
	})

	ginkgo.It("should fall back to the remote address without a proxy header", func() {
		handler := NewRateLimiter(1, time.Minute).Handler(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.RemoteAddr = "198.51.100.7:51234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

		req2 := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req2.RemoteAddr = "198.51.100.7:51235"
		rec2 := httptest.NewRecorder()
		handler.ServeHTTP(rec2, req2)
		gomega.Expect(rec2.Code).To(gomega.Equal(http.StatusTooManyRequests))
	})
})

var _ = ginkgo.Describe("SecurityHeaders", func() {
	ginkgo.It("should set the hardening headers on every response", func() {
		handler := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		gomega.Expect(rec.Header().Get("X-Content-Type-Options")).To(gomega.Equal("nosniff"))
		gomega.Expect(rec.Header().Get("X-Frame-Options")).To(gomega.Equal("DENY"))
		gomega.Expect(rec.Header().Get("Referrer-Policy")).To(gomega.Equal("no-referrer"))
		gomega.Expect(rec.Header().Get("Strict-Transport-Security")).ToNot(gomega.BeEmpty())
	})
})
