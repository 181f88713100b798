package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pipelineStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hirehand_pipeline_started_total",
		Help: "Total onboarding pipeline runs started",
	})
	pipelineCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hirehand_pipeline_completed_total",
		Help: "Total onboarding pipeline runs completed successfully",
	})
	pipelineFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hirehand_pipeline_failed_total",
		Help: "Total onboarding pipeline runs failed, by stage",
	}, []string{"stage"})
	stageDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hirehand_pipeline_stage_duration_seconds",
		Help:    "Latency of individual pipeline stages",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"stage"})
)

// IncPipelineStarted increments the started counter.
func IncPipelineStarted() {
	pipelineStartedTotal.Inc()
}

// IncPipelineCompleted increments the completed counter.
func IncPipelineCompleted() {
	pipelineCompletedTotal.Inc()
}

// IncPipelineFailed increments the failed counter for a stage.
func IncPipelineFailed(stage string) {
	pipelineFailedTotal.WithLabelValues(stage).Inc()
}

// ObserveStageDuration records a stage duration in seconds.
func ObserveStageDuration(stage string, seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	stageDurationSeconds.WithLabelValues(stage).Observe(seconds)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
