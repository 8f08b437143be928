package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "supersimple"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renderDuration   *prom.HistogramVec
	framesRendered   *prom.CounterVec
	presentErrors    *prom.CounterVec
	settingsFields   *prom.CounterVec
	animationRuns    prom.Counter
	tickLayoutErrors prom.Counter
}

// NewPrometheusRecorder registers the watch face metrics with reg. A nil
// reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time to compose and present one frame",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"reason"}),
		framesRendered: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "frames_rendered_total",
			Help:      "Frames rendered by trigger",
		}, []string{"reason"}),
		presentErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "present_errors_total",
			Help:      "Frames the display target failed to show",
		}, []string{"target"}),
		settingsFields: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "settings_fields_total",
			Help:      "Configuration fields received by outcome",
		}, []string{"result"}),
		animationRuns: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "animation_runs_total",
			Help:      "Intro animations started",
		}),
		tickLayoutErrors: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "tick_layout_errors_total",
			Help:      "Frames drawn without ticks because the tick count is unsupported",
		}),
	}
	reg.MustRegister(pr.renderDuration, pr.framesRendered, pr.presentErrors,
		pr.settingsFields, pr.animationRuns, pr.tickLayoutErrors)
	return pr
}

func (p *PrometheusRecorder) ObserveRender(reason Reason, d time.Duration) {
	p.renderDuration.WithLabelValues(string(reason)).Observe(d.Seconds())
	p.framesRendered.WithLabelValues(string(reason)).Inc()
}

func (p *PrometheusRecorder) IncPresentError(target string) {
	p.presentErrors.WithLabelValues(target).Inc()
}

func (p *PrometheusRecorder) IncSettings(applied, rejected int) {
	if applied > 0 {
		p.settingsFields.WithLabelValues("applied").Add(float64(applied))
	}
	if rejected > 0 {
		p.settingsFields.WithLabelValues("rejected").Add(float64(rejected))
	}
}

func (p *PrometheusRecorder) IncAnimationRun() { p.animationRuns.Inc() }

func (p *PrometheusRecorder) IncTickLayoutError() { p.tickLayoutErrors.Inc() }

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prom.Registry {
	reg := prom.NewRegistry()
	reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	return reg
}

// HTTPHandler serves the metrics of reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
