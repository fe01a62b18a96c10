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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/metadata"
)

type label struct {
	key      string
	operator string
	value    string
}

func collectLabels(t *testing.T, q string) []label {
	e, err := Parse(q)
	assert.NoError(t, err)

	var labels []label
	err = LabelMap(e, func(key, operator string, values ...string) {
		for _, v := range values {
			labels = append(labels, label{key: key, operator: operator, value: v})
		}
	})
	assert.NoError(t, err)
	return labels
}

func TestLabelMap(t *testing.T) {
	testCases := map[string]struct {
		q      string
		labels []label
	}{
		"simple condition": {
			q: "status:active",
			labels: []label{
				{key: "status", operator: metadata.ConditionEqual, value: "active"},
			},
		},
		"field group fans out": {
			q: "status:(active OR pending) AND name:te*t",
			labels: []label{
				{key: "status", operator: metadata.ConditionEqual, value: "active"},
				{key: "status", operator: metadata.ConditionEqual, value: "pending"},
				{key: "name", operator: metadata.ConditionContains, value: "te*t"},
			},
		},
		"negative conditions skipped": {
			q: "status:active AND NOT env:prod -level:debug",
			labels: []label{
				{key: "status", operator: metadata.ConditionEqual, value: "active"},
			},
		},
		"implicit field skipped": {
			q:      "error",
			labels: nil,
		},
		"range skipped": {
			q:      "age:[18 TO 30]",
			labels: nil,
		},
	}

	for name, c := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.ElementsMatch(t, c.labels, collectLabels(t, c.q))
		})
	}
}
