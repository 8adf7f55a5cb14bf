package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders committed",
	})

	OrdersFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Total number of rejected orders",
	}, []string{"reason"})

	OrderValue = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value",
		Help:    "Committed order totals",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})

	ReviewsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reviews_created_total",
		Help: "Total number of reviews created",
	})

	ReviewsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviews_rejected_total",
		Help: "Total number of rejected reviews",
	}, []string{"reason"})

	WishlistAddsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wishlist_adds_total",
		Help: "Total number of wishlist additions",
	})

	WishlistRemovesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wishlist_removes_total",
		Help: "Total number of wishlist removals",
	})

	UsersRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "users_registered_total",
		Help: "Total number of registered users",
	})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "login_failures_total",
		Help: "Total number of failed login attempts",
	})

	ProductCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_cache_hits_total",
		Help: "Product cache hits",
	})

	ProductCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_cache_misses_total",
		Help: "Product cache misses",
	})

	EmailsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Total number of confirmation emails sent",
	})

	EmailsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emails_failed_total",
		Help: "Total number of failed confirmation emails",
	})

	EmailDispatchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "email_dispatch_latency_seconds",
		Help:    "Latency of confirmation email dispatch",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
