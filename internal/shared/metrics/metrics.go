package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	registerTotal     atomic.Uint64
	loginTotal        atomic.Uint64
	loginFailedTotal  atomic.Uint64
	resumeCreateTotal atomic.Uint64
	resumeDeleteTotal atomic.Uint64
	imageUploadTotal  atomic.Uint64

	requestDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
)

// IncRegister increments the successful-registration counter.
func IncRegister() {
	registerTotal.Add(1)
}

// IncLogin increments the successful-login counter.
func IncLogin() {
	loginTotal.Add(1)
}

// IncLoginFailed increments the failed-login counter.
func IncLoginFailed() {
	loginFailedTotal.Add(1)
}

// IncResumeCreated increments the resume-created counter.
func IncResumeCreated() {
	resumeCreateTotal.Add(1)
}

// IncResumeDeleted increments the resume-deleted counter.
func IncResumeDeleted() {
	resumeDeleteTotal.Add(1)
}

// IncImageUpload increments the image-upload counter.
func IncImageUpload() {
	imageUploadTotal.Add(1)
}

// ObserveRequestDurationMs records a request duration in milliseconds.
func ObserveRequestDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	requestDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "auth_register_total", "Total successful registrations", registerTotal.Load())
	writeCounter(&buf, "auth_login_total", "Total successful logins", loginTotal.Load())
	writeCounter(&buf, "auth_login_failed_total", "Total failed logins", loginFailedTotal.Load())
	writeCounter(&buf, "resume_created_total", "Total resumes created", resumeCreateTotal.Load())
	writeCounter(&buf, "resume_deleted_total", "Total resumes deleted", resumeDeleteTotal.Load())
	writeCounter(&buf, "resume_image_upload_total", "Total resume image uploads", imageUploadTotal.Load())
	writeHistogram(&buf, "http_request_duration_ms", "HTTP request duration in milliseconds", requestDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
