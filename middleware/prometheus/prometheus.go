package prometheus

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/startdusk/sqlcmd"
)

type MiddlewareBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string

	// Registerer 为空时注册到 prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

func (m MiddlewareBuilder) Build() sqlcmd.Middleware {
	summary := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name:      m.Name,
		Subsystem: m.Subsystem,
		Namespace: m.Namespace,
		Help:      m.Help,

		// 设置指标 如 0.5: 0.01 0.5是一个指标，0.01是一个误差值，表示0.5上下0.01 即误差范围为 0.49-0.51
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.75:  0.01,
			0.90:  0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, []string{
		"type",  // 语句类型
		"table", // 表名
	})

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      m.Name + "_total",
		Subsystem: m.Subsystem,
		Namespace: m.Namespace,
		Help:      m.Help,
	}, []string{
		"type",
		"table",
		"status", // ok 或者 error
	})

	reg := m.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(summary, counter)

	return func(next sqlcmd.Handler) sqlcmd.Handler {
		return func(ctx context.Context, qc *sqlcmd.QueryContext) *sqlcmd.QueryResult {
			startTime := time.Now()
			res := next(ctx, qc)
			// 渲染很快, 用微秒记录
			duration := time.Since(startTime).Microseconds()
			summary.WithLabelValues(qc.Type, qc.Table).Observe(float64(duration))
			status := "ok"
			if res.Err != nil {
				status = "error"
			}
			counter.WithLabelValues(qc.Type, qc.Table, status).Inc()
			return res
		}
	}
}
