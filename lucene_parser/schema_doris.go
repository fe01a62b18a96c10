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
	"fmt"
	"strings"
)

const (
	DorisTypeInt      = "INT"
	DorisTypeTinyInt  = "TINYINT"
	DorisTypeSmallInt = "SMALLINT"
	DorisTypeLargeInt = "LARGEINT"
	DorisTypeBigInt   = "BIGINT"
	DorisTypeFloat    = "FLOAT"
	DorisTypeDouble   = "DOUBLE"
	DorisTypeDecimal  = "DECIMAL"

	DorisTypeDate     = "DATE"
	DorisTypeDatetime = "DATETIME"

	DorisTypeBoolean = "BOOLEAN"
	DorisTypeString  = "STRING"
	DorisTypeText    = "TEXT"
)

type dorisSchemaProvider interface {
	schemaProvider
	isText(field string) bool
	transformField(field string) string
	formatValue(field, value string) string
}

type dorisSchema struct {
	*baseSchema
	fieldOptions map[string]FieldOption
}

func NewDorisSchema(
	getFieldType func(field string) (string, bool),
	getAlias func(field string) string,
	fieldOptions map[string]FieldOption,
) *dorisSchema {
	// 类型统一转成大写再参与判断
	dorisGetFieldType := func(field string) (string, bool) {
		if getFieldType == nil {
			return Empty, false
		}
		fieldType, exists := getFieldType(field)
		if !exists {
			return Empty, false
		}
		return strings.ToUpper(fieldType), true
	}

	return &dorisSchema{
		baseSchema:   NewBaseSchema(dorisGetFieldType, getAlias),
		fieldOptions: fieldOptions,
	}
}

func (s *dorisSchema) isText(field string) bool {
	cleanField := strings.Trim(field, "`")

	if s.fieldOptions != nil {
		if option, ok := s.fieldOptions[cleanField]; ok {
			// 显式声明为分词字段直接按文本处理
			if option.Analyzed {
				return true
			}
			// 类型兜底,同时兼容 ES 的 text 和 Doris 的 TEXT
			if option.Type != Empty {
				if strings.EqualFold(option.Type, FieldTypeText) || strings.EqualFold(option.Type, DorisTypeText) {
					return true
				}
			}
		}
	}

	if fieldType, ok := s.getFieldType(cleanField); ok && fieldType == DorisTypeText {
		return true
	}

	return false
}

// transformField 转换字段名,对象字段走 CAST 取值
func (s *dorisSchema) transformField(field string) string {
	if field == Empty || field == "*" {
		return field
	}

	cleanField := strings.Trim(field, "`")

	parts := strings.Split(cleanField, ".")
	if len(parts) == 1 {
		return "`" + cleanField + "`"
	}

	fieldType, exists := s.getFieldType(cleanField)
	if !exists {
		fieldType = DorisTypeString
	}

	// __ext.container_name -> CAST(__ext['container_name'] AS STRING)
	castExpression := parts[0] + "['" + strings.Join(parts[1:], ".") + "']"
	return "CAST(" + castExpression + " AS " + fieldType + ")"
}

// formatValue 数值类型不加引号,其余加引号并转义
func (s *dorisSchema) formatValue(field, value string) string {
	cleanField := strings.Trim(field, "`")

	if fieldType, ok := s.getFieldType(cleanField); ok {
		switch fieldType {
		case DorisTypeInt, DorisTypeTinyInt, DorisTypeSmallInt, DorisTypeLargeInt, DorisTypeBigInt,
			DorisTypeFloat, DorisTypeDouble, DorisTypeDecimal:
			return value
		}
	}

	return fmt.Sprintf("'%s'", escapeSQL(value))
}
