// Tencent is pleased to support the open source community by making
// 蓝鲸智云 - 监控平台 (BlueKing - Monitor) available.
// Copyright (C) 2022 THL A29 Limited, a Tencent company. All rights reserved.
// Licensed under the MIT License (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at http://opensource.org/licenses/MIT
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package log

import (
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var (
	loggerLevel = zap.NewAtomicLevel()

	// DefaultLogger 进程内缺省 logger,配置加载后被替换
	DefaultLogger *Logger

	// OtLogger 带 trace 关联的 logger,初始为 no-op,配置加载后被替换
	OtLogger = otelzap.New(zap.NewNop())

	syncer *ReopenableWriteSyncer
)

// Logger zap logger 的包装
type Logger struct {
	logger *zap.Logger
}

// Sync flush 缓冲的日志
func (l *Logger) Sync() error {
	return l.logger.Sync()
}

// ReopenableWriteSyncer 支持重新打开文件的 WriteSyncer,用于配合外部日志轮转
type ReopenableWriteSyncer struct {
	mut  sync.Mutex
	path string
	file *os.File
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	s := &ReopenableWriteSyncer{path: path}
	if err := s.Reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reopen 关闭并重新打开日志文件
func (s *ReopenableWriteSyncer) Reopen() error {
	s.mut.Lock()
	defer s.mut.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = file
	return nil
}

func (s *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.file.Write(p)
}

func (s *ReopenableWriteSyncer) Sync() error {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.file.Sync()
}
