// Tencent is pleased to support the open source community by making
// 蓝鲸智云 - 监控平台 (BlueKing - Monitor) available.
// Copyright (C) 2022 THL A29 Limited, a Tencent company. All rights reserved.
// Licensed under the MIT License (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at http://opensource.org/licenses/MIT
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package metric

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/log"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusCached  = "cached"
)

var (
	parseCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lucene_ast",
			Name:      "parse_count_total",
			Help:      "query parse count",
		},
		[]string{"status"},
	)

	parseSecondHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lucene_ast",
			Name:      "parse_seconds",
			Help:      "query parse seconds",
			Buckets:   []float64{0, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 3},
		},
		[]string{"status"},
	)
)

// ParseCountInc 解析次数指标
func ParseCountInc(ctx context.Context, params ...string) {
	metric, err := parseCount.GetMetricWithLabelValues(params...)
	counterInc(ctx, metric, err, params...)
}

// ParseSecond 解析耗时指标
func ParseSecond(ctx context.Context, duration time.Duration, params ...string) {
	metric, err := parseSecondHistogram.GetMetricWithLabelValues(params...)
	observe(ctx, metric, err, duration, params...)
}

// counterInc 被采样的请求带上 exemplar
func counterInc(
	ctx context.Context, metric prometheus.Counter, err error, params ...string,
) {
	if err != nil {
		log.Warnf(ctx, "metric counter:%v failed,error:%s", params, err)
		return
	}

	sp := trace.SpanFromContext(ctx).SpanContext()
	if sp.IsSampled() {
		exemplarAdder, ok := metric.(prometheus.ExemplarAdder)
		if ok {
			exemplarAdder.AddWithExemplar(1, prometheus.Labels{
				"traceID": sp.TraceID().String(),
				"spanID":  sp.SpanID().String(),
			})
		} else {
			log.Errorf(ctx, "metric type is wrong: %T, %v", metric, metric)
		}
	} else {
		metric.Inc()
	}
}

func observe(
	ctx context.Context, metric prometheus.Observer, err error, duration time.Duration, params ...string,
) {
	if err != nil {
		log.Warnf(ctx, "metric histogram:%v failed,error:%s", params, err)
		return
	}

	sp := trace.SpanFromContext(ctx).SpanContext()
	if sp.IsSampled() {
		// exemplar 只支持 histograms 类型,使用 summary 会报错
		exemplarObserve, ok := metric.(prometheus.ExemplarObserver)
		if ok {
			exemplarObserve.ObserveWithExemplar(duration.Seconds(), prometheus.Labels{
				"traceID": sp.TraceID().String(),
				"spanID":  sp.SpanID().String(),
			})
		} else {
			log.Errorf(ctx, "metric type is wrong: %T, %v", metric, metric)
		}
	} else {
		metric.Observe(duration.Seconds())
	}
}

// init
func init() {
	prometheus.MustRegister(parseCount, parseSecondHistogram)
}
