package chart

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"weatherboard/internal/config"
	"weatherboard/internal/model"
)

// rainAxisMax caps the probability axis: percentages never exceed 100.
const rainAxisMax = 100.0

// Prober reports whether the charting surface is available. The probe runs
// once and the answer is cached for the process lifetime.
type Prober interface {
	Available() bool
}

// Adapter owns the three chart descriptors (temperature line, rain
// probability bar, wind speed line). Render discards the previous bundle and
// rebuilds all three; descriptors are never updated in place.
type Adapter struct {
	prober Prober

	mu     sync.Mutex
	bundle *model.ChartBundle
}

func NewAdapter(prober Prober) *Adapter {
	return &Adapter{prober: prober}
}

// Render replaces the held chart bundle with one built from series. When the
// charting surface is unavailable it returns model.ErrRenderingUnavailable
// and clears any previously held bundle; the rest of the dashboard is
// expected to render regardless.
func (a *Adapter) Render(series *model.ChartSeries, unit model.UnitPreference) (*model.ChartBundle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bundle = nil

	if a.prober != nil && !a.prober.Available() {
		return nil, model.ErrRenderingUnavailable
	}

	maxRain := rainAxisMax
	a.bundle = &model.ChartBundle{
		Temperature: &model.ChartConfig{
			Type:      "line",
			Labels:    series.Labels,
			Label:     "Temperature",
			Data:      toPointers(series.Temperature),
			AxisTitle: fmt.Sprintf("Temperature (%s)", unit.TempSuffix()),
		},
		RainProbability: &model.ChartConfig{
			Type:         "bar",
			Labels:       series.Labels,
			Label:        "Rain probability",
			Data:         series.RainProbability,
			AxisTitle:    "Probability (%)",
			SuggestedMax: &maxRain,
		},
		WindSpeed: &model.ChartConfig{
			Type:      "line",
			Labels:    series.Labels,
			Label:     "Wind speed",
			Data:      toPointers(series.WindSpeed),
			AxisTitle: fmt.Sprintf("Wind speed (%s)", model.WindSuffix),
		},
	}
	return a.bundle, nil
}

// Bundle returns the currently held descriptors, or nil after a failed
// render.
func (a *Adapter) Bundle() *model.ChartBundle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bundle
}

func toPointers(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

// assetProbe checks the configured charting asset once at startup and caches
// the verdict.
type assetProbe struct {
	once      sync.Once
	available bool

	httpClient *http.Client
	assetURL   string
}

// NewAssetProbe probes the configured chart asset URL. An optional custom
// http.Client may be injected.
func NewAssetProbe(httpClient ...*http.Client) Prober {
	hc := &http.Client{Timeout: config.GetChartProbeTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &assetProbe{
		httpClient: hc,
		assetURL:   config.GetChartAssetURL(),
	}
}

func (p *assetProbe) Available() bool {
	p.once.Do(func() {
		if p.assetURL == "" {
			return
		}
		req, err := http.NewRequest(http.MethodHead, p.assetURL, nil)
		if err != nil {
			return
		}
		start := time.Now()
		resp, err := p.httpClient.Do(req)
		if err != nil {
			config.GetLogger().Warnw("chart asset unreachable", "url", p.assetURL, "error", err)
			return
		}
		defer resp.Body.Close()
		p.available = resp.StatusCode == http.StatusOK
		if !p.available {
			config.GetLogger().Warnw("chart asset probe failed", "url", p.assetURL, "status", resp.StatusCode)
			return
		}
		config.GetLogger().Infow("chart asset probe ok", "url", p.assetURL, "took", time.Since(start))
	})
	return p.available
}
