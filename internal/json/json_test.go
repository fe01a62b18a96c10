// Tencent is pleased to support the open source community by making
// 蓝鲸智云 - 监控平台 (BlueKing - Monitor) available.
// Copyright (C) 2022 THL A29 Limited, a Tencent company. All rights reserved.
// Licensed under the MIT License (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at http://opensource.org/licenses/MIT
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalSortedKeys(t *testing.T) {
	actual, err := MarshalString(map[string]any{
		"zebra": 1,
		"alpha": "x",
		"mid":   map[string]any{"b": 2, "a": 1},
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"alpha":"x","mid":{"a":1,"b":2},"zebra":1}`, actual)
}

func TestUnmarshal(t *testing.T) {
	var v struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	err := UnmarshalString(`{"name":"foo","count":3}`, &v)
	assert.NoError(t, err)
	assert.Equal(t, "foo", v.Name)
	assert.Equal(t, 3, v.Count)
}
