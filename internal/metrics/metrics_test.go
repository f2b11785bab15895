package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	c := New(reg)

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/api/items/:id", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })

	for _, p := range []string{"/api/items/1", "/api/items/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(c.httpTotal.WithLabelValues("GET", "/api/items/:id", "204")); got != 2 {
		t.Fatalf("route count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpTotal.WithLabelValues("GET", "unknown", "404")); got != 1 {
		t.Fatalf("unknown count = %v, want 1", got)
	}
}

func TestObserveListing(t *testing.T) {
	c := New(prometheus.NewRegistry())
	c.ObserveListing("products", "", 12)
	c.ObserveListing("products", "price_asc", 3)

	if got := testutil.ToFloat64(c.listingRuns.WithLabelValues("products", "none")); got != 1 {
		t.Fatalf("runs(none) = %v", got)
	}
	if got := testutil.CollectAndCount(c.listingTotal); got != 1 {
		t.Fatalf("histogram series = %d, want 1", got)
	}

	var nilCollector *Collector
	nilCollector.ObserveListing("x", "", 1)
}
