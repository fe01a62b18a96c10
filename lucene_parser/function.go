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
	"regexp"
	"strings"
)

var numericRegexp = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func isNumeric(s string) bool {
	return numericRegexp.MatchString(s)
}

// hasWildcard 词项中是否含有未转义的 * 或 ?
func hasWildcard(term string) bool {
	for i := 0; i < len(term); i++ {
		switch term[i] {
		case '\\':
			i++
		case '*', '?':
			return true
		}
	}
	return false
}

func escapeSQL(s string) string {
	s = strings.ReplaceAll(s, "\\\"", "\"")
	return strings.ReplaceAll(s, "'", "\\'")
}

// collectClauses 展平同操作符的右侧链,括号分组和字段分组保持独立
func collectClauses(b *BooleanExpr, op string) []Expr {
	clauses := []Expr{b.Left}
	right := b.Right
	for {
		rb, ok := right.(*BooleanExpr)
		if !ok || rb.Operator != op || rb.Parenthesized || rb.Field != Empty || rb.Start != Empty {
			break
		}
		clauses = append(clauses, rb.Left)
		right = rb.Right
	}
	clauses = append(clauses, right)
	return clauses
}
