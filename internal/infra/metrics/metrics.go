// Package metrics exposes Prometheus counters for the membership flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MembersEnrolled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gym_members_enrolled_total",
		Help: "Members enrolled.",
	})
	AttendanceMarked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_attendance_marked_total",
		Help: "Attendance marks by outcome.",
	}, []string{"outcome"})
	PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_payments_recorded_total",
		Help: "Payments booked by source.",
	}, []string{"source"})
	MailSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_mail_sent_total",
		Help: "Contact and join mails by kind and outcome.",
	}, []string{"kind", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gym_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Middleware records request latency keyed by the matched route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
