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
	opTypeNone = iota
	opTypeOr
	opTypeAnd
)

// ToSQL 转换成 Doris 方言的 WHERE 片段
func (c *Converter) ToSQL(e Expr) string {
	if e == nil {
		return Empty
	}
	return c.walkSQL(e, Empty, opTypeNone)
}

func (c *Converter) walkSQL(e Expr, scope string, parentOp int) string {
	switch v := e.(type) {
	case *BooleanExpr:
		return c.sqlBoolean(v, scope, parentOp)
	case *FieldExpr:
		return c.sqlTerm(v, scope)
	case *RangeExpr:
		return c.sqlRange(v, scope, parentOp)
	}
	return Empty
}

func (c *Converter) sqlBoolean(b *BooleanExpr, scope string, parentOp int) string {
	if b.IsEmpty() {
		return Empty
	}
	if b.Field != Empty && b.Field != ImplicitField {
		scope = b.Field
	}
	// 括号分组自己负责括号,里层不再重复
	if b.Parenthesized {
		parentOp = opTypeNone
	}

	var sql string
	switch {
	case b.Left == nil:
		sql = Empty
	case b.Right == nil:
		sql = c.walkSQL(b.Left, scope, parentOp)
	default:
		sql = c.sqlOperator(b, scope, parentOp)
	}

	if b.Parenthesized && sql != Empty {
		sql = "(" + sql + ")"
	}
	if b.Start == OperatorNot && sql != Empty {
		sql = "NOT (" + sql + ")"
	}
	return sql
}

func (c *Converter) sqlOperator(b *BooleanExpr, scope string, parentOp int) string {
	switch b.Operator {
	case OperatorAnd, OperatorAndSym:
		left := c.walkSQL(b.Left, scope, opTypeAnd)
		right := c.walkSQL(b.Right, scope, opTypeAnd)
		return left + " AND " + right
	case OperatorNot, OperatorAndNot:
		left := c.walkSQL(b.Left, scope, opTypeAnd)
		right := c.walkSQL(b.Right, scope, opTypeNone)
		return left + " AND NOT (" + right + ")"
	case OperatorOrNot:
		left := c.walkSQL(b.Left, scope, opTypeOr)
		right := c.walkSQL(b.Right, scope, opTypeNone)
		return left + " OR NOT (" + right + ")"
	default:
		left := c.walkSQL(b.Left, scope, opTypeOr)
		right := c.walkSQL(b.Right, scope, opTypeOr)
		sql := left + " OR " + right
		// 只有当父操作是 AND 时才加括号
		if parentOp == opTypeAnd {
			return "(" + sql + ")"
		}
		return sql
	}
}

func (c *Converter) sqlTerm(f *FieldExpr, scope string) string {
	rawField := c.sqlField(f.Field, scope)
	field := c.doris.transformField(rawField)
	isText := c.doris.isText(rawField)

	var sql string
	switch {
	case f.Similarity != nil:
		if isText {
			sql = fmt.Sprintf("%s MATCH_PHRASE %s", field, c.doris.formatValue(rawField, f.Term))
		} else {
			sql = fmt.Sprintf("%s LIKE '%%%s%%'", field, escapeSQL(f.Term))
		}
	case hasWildcard(f.Term):
		value := strings.ReplaceAll(f.Term, "?", "_")
		if !strings.Contains(value, "*") {
			value = "%" + value + "%"
		} else {
			value = strings.ReplaceAll(value, "*", "%")
		}
		sql = fmt.Sprintf("%s LIKE '%s'", field, escapeSQL(value))
	case isText || f.Proximity != nil || f.Quoted:
		sql = fmt.Sprintf("%s MATCH_PHRASE %s", field, c.doris.formatValue(rawField, f.Term))
	default:
		sql = fmt.Sprintf("%s = %s", field, c.doris.formatValue(rawField, f.Term))
	}

	switch f.Prefix {
	case PrefixProhibit, PrefixNegate:
		sql = "NOT (" + sql + ")"
	}
	return sql
}

func (c *Converter) sqlRange(r *RangeExpr, scope string, parentOp int) string {
	rawField := c.sqlField(r.Field, scope)
	field := c.doris.transformField(rawField)

	var conditions []string
	if r.TermMin != "*" {
		op := ">"
		if r.Inclusive == InclusiveBoth || r.Inclusive == InclusiveLeft {
			op = ">="
		}
		conditions = append(conditions, fmt.Sprintf("%s %s %s", field, op, c.sqlRangeValue(rawField, r.TermMin)))
	}
	if r.TermMax != "*" {
		op := "<"
		if r.Inclusive == InclusiveBoth || r.Inclusive == InclusiveRight {
			op = "<="
		}
		conditions = append(conditions, fmt.Sprintf("%s %s %s", field, op, c.sqlRangeValue(rawField, r.TermMax)))
	}
	sql := strings.Join(conditions, " AND ")
	if parentOp != opTypeNone && len(conditions) > 1 {
		return "(" + sql + ")"
	}
	return sql
}

func (c *Converter) sqlField(field, scope string) string {
	if field == Empty || field == ImplicitField {
		field = scope
	}
	if field == Empty {
		return DefaultLogField
	}
	return c.doris.getAlias(field)
}

// sqlRangeValue 数值端点不加引号
func (c *Converter) sqlRangeValue(rawField, v string) string {
	if isNumeric(v) {
		return v
	}
	return c.doris.formatValue(rawField, v)
}
