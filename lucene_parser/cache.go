// Tencent is pleased to support the open source community by making
// 蓝鲸智云 - 监控平台 (BlueKing - Monitor) available.
// Copyright (C) 2022 THL A29 Limited, a Tencent company. All rights reserved.
// Licensed under the MIT License (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at http://opensource.org/licenses/MIT
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package lucene_parser

import (
	"context"
	"time"

	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/log"
	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/metadata"
	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/metric"
	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/trace"
)

// ParseWithCache 带缓存的解析入口,同一查询串复用上次的解析结果
func ParseWithCache(ctx context.Context, query string) (Expr, error) {
	var err error
	ctx, span := trace.NewSpan(ctx, "parse-with-cache")
	defer span.End(&err)

	span.Set("query", query)

	if v, ok := metadata.GetQueryCache(query); ok {
		if e, ok2 := v.(Expr); ok2 {
			metric.ParseCountInc(ctx, metric.StatusCached)
			return e, nil
		}
	}

	start := time.Now()
	e, err := Parse(query)
	if err != nil {
		metric.ParseCountInc(ctx, metric.StatusFailed)
		log.Errorf(ctx, "parse query [%s] failed, error: %s", query, err)
		return nil, err
	}

	metadata.SetQueryCache(query, e)
	metric.ParseCountInc(ctx, metric.StatusSuccess)
	metric.ParseSecond(ctx, time.Since(start), metric.StatusSuccess)
	return e, nil
}
