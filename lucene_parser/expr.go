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
	"strconv"
	"strings"
)

const (
	// ImplicitField 表示没有显式写出字段名
	ImplicitField = "<implicit>"
	// ImplicitOperator 表示两个子表达式之间没有显式写出操作符
	ImplicitOperator = "<implicit>"

	OperatorAnd    = "AND"
	OperatorOr     = "OR"
	OperatorNot    = "NOT"
	OperatorAndNot = "AND NOT"
	OperatorOrNot  = "OR NOT"
	OperatorAndSym = "&&"
	OperatorOrSym  = "||"

	PrefixRequire  = "+"
	PrefixProhibit = "-"
	PrefixNegate   = "!"

	InclusiveBoth  = "both"
	InclusiveNone  = "none"
	InclusiveLeft  = "left"
	InclusiveRight = "right"
)

// Expr .
type Expr interface{}

// Position 源串中的一个点,Line/Column 从 1 开始
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span 源串中的一段,End 为开区间
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// BooleanExpr 二元组合节点,也承载字段分组和括号分组
type BooleanExpr struct {
	Left          Expr   `json:"left,omitempty"`
	Operator      string `json:"operator,omitempty"`
	Right         Expr   `json:"right,omitempty"`
	Start         string `json:"start,omitempty"`
	Field         string `json:"field,omitempty"`
	FieldLocation *Span  `json:"fieldLocation,omitempty"`
	Parenthesized bool   `json:"parenthesized,omitempty"`
}

// IsEmpty 空查询
func (e *BooleanExpr) IsEmpty() bool {
	return e.Left == nil && e.Right == nil && e.Operator == "" && e.Start == "" && e.Field == ""
}

// FieldExpr 词项节点
type FieldExpr struct {
	Field         string   `json:"field"`
	FieldLocation *Span    `json:"fieldLocation,omitempty"`
	Term          string   `json:"term"`
	Quoted        bool     `json:"quoted"`
	Regex         bool     `json:"regex"`
	TermLocation  *Span    `json:"termLocation,omitempty"`
	Prefix        string   `json:"prefix,omitempty"`
	Boost         *float64 `json:"boost,omitempty"`
	Similarity    *float64 `json:"similarity,omitempty"`
	Proximity     *int     `json:"proximity,omitempty"`
}

// RangeExpr 区间节点
type RangeExpr struct {
	Field         string `json:"field"`
	FieldLocation *Span  `json:"fieldLocation,omitempty"`
	TermMin       string `json:"term_min"`
	TermMax       string `json:"term_max"`
	Inclusive     string `json:"inclusive"`
}

func (e *BooleanExpr) String() string {
	if e.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	if e.Start != "" {
		sb.WriteString(e.Start)
		sb.WriteString(" ")
	}
	if e.Field != "" && e.Field != ImplicitField {
		sb.WriteString(e.Field)
		sb.WriteString(":")
	}
	inner := exprString(e.Left)
	if e.Right != nil {
		sep := " "
		if e.Operator != "" && e.Operator != ImplicitOperator {
			sep = " " + e.Operator + " "
		}
		inner += sep + exprString(e.Right)
	} else if e.Left == nil {
		inner = e.Operator
	}
	if e.Parenthesized {
		sb.WriteString("(")
		sb.WriteString(inner)
		sb.WriteString(")")
	} else {
		sb.WriteString(inner)
	}
	return sb.String()
}

func (e *FieldExpr) String() string {
	var sb strings.Builder
	if e.Field != "" && e.Field != ImplicitField {
		sb.WriteString(e.Field)
		sb.WriteString(":")
	}
	sb.WriteString(e.Prefix)
	if e.Quoted {
		sb.WriteString(`"`)
		sb.WriteString(e.Term)
		sb.WriteString(`"`)
	} else {
		sb.WriteString(e.Term)
	}
	if e.Similarity != nil {
		sb.WriteString("~")
		sb.WriteString(formatFloat(*e.Similarity))
	}
	if e.Proximity != nil {
		sb.WriteString("~")
		sb.WriteString(strconv.Itoa(*e.Proximity))
	}
	if e.Boost != nil {
		sb.WriteString("^")
		sb.WriteString(formatFloat(*e.Boost))
	}
	return sb.String()
}

func (e *RangeExpr) String() string {
	open, closing := "{", "}"
	switch e.Inclusive {
	case InclusiveBoth:
		open, closing = "[", "]"
	case InclusiveLeft:
		open, closing = "[", "}"
	case InclusiveRight:
		open, closing = "{", "]"
	}
	field := ""
	if e.Field != "" && e.Field != ImplicitField {
		field = e.Field + ":"
	}
	return fmt.Sprintf("%s%s%s TO %s%s", field, open, e.TermMin, e.TermMax, closing)
}

func exprString(e Expr) string {
	switch v := e.(type) {
	case *BooleanExpr:
		return v.String()
	case *FieldExpr:
		return v.String()
	case *RangeExpr:
		return v.String()
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
