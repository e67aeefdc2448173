package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

// writeMetrics prints counters and histogram counts in a flat
// name{labels} value form.
func writeMetrics(w io.Writer, e *env) error {
	if e.registry == nil {
		info(w, "metrics disabled")
		return nil
	}
	families, err := e.registry.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			lines = append(lines, fmt.Sprintf("%s%s %s", fam.GetName(), labels(m), sampleValue(fam.GetType(), m)))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	pairs := m.GetLabel()
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func sampleValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprint(m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprint(m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		return fmt.Sprintf("count=%d", m.GetHistogram().GetSampleCount())
	default:
		return "?"
	}
}
