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
	"github.com/bytedance/sonic"
)

// std map 键排序保证输出稳定,便于测试和日志对比
var std = sonic.Config{
	SortMapKeys: true,
}.Froze()

func Marshal(v any) ([]byte, error) {
	return std.Marshal(v)
}

func MarshalString(v any) (string, error) {
	return std.MarshalToString(v)
}

func Unmarshal(data []byte, v any) error {
	return std.Unmarshal(data, v)
}

func UnmarshalString(data string, v any) error {
	return std.UnmarshalFromString(data, v)
}
