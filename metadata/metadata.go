// Tencent is pleased to support the open source community by making
// 蓝鲸智云 - 监控平台 (BlueKing - Monitor) available.
// Copyright (C) 2022 THL A29 Limited, a Tencent company. All rights reserved.
// Licensed under the MIT License (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at http://opensource.org/licenses/MIT
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package metadata

import (
	"sync"

	cache "github.com/patrickmn/go-cache"
)

var (
	md   *metaData
	once sync.Once
)

// metaData 元数据存储
type metaData struct {
	c *cache.Cache
}

// getMetadata 未经过配置初始化时兜底建一个缺省缓存
func getMetadata() *metaData {
	once.Do(func() {
		if md == nil {
			setDefaultConfig()
			initMetadata()
		}
	})
	return md
}

// GetQueryCache 获取查询串对应的缓存
func GetQueryCache(key string) (any, bool) {
	return getMetadata().c.Get(key)
}

// SetQueryCache 写入查询串对应的缓存
func SetQueryCache(key string, value any) {
	getMetadata().c.SetDefault(key, value)
}
