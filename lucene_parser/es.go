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
	elastic "github.com/olivere/elastic/v7"
	"github.com/spf13/cast"
)

// Converter 把表达式树转换成下游可执行的表示
type Converter struct {
	es    esSchemaProvider
	doris dorisSchemaProvider
}

type ConverterOption func(*Converter)

func WithESSchema(s *esSchema) ConverterOption {
	return func(c *Converter) { c.es = s }
}

func WithDorisSchema(s *dorisSchema) ConverterOption {
	return func(c *Converter) { c.doris = s }
}

func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.es == nil {
		c.es = NewESSchema(nil, nil)
	}
	if c.doris == nil {
		c.doris = NewDorisSchema(nil, nil, nil)
	}
	return c
}

// ToES 转换成 ES 查询 DSL
func (c *Converter) ToES(e Expr) elastic.Query {
	if e == nil {
		return nil
	}
	return c.walkES(e, Empty)
}

func (c *Converter) walkES(e Expr, scope string) elastic.Query {
	switch v := e.(type) {
	case *BooleanExpr:
		return c.esBoolean(v, scope)
	case *FieldExpr:
		return c.esTerm(v, scope)
	case *RangeExpr:
		return c.esRange(v, scope)
	}
	return nil
}

func (c *Converter) esBoolean(b *BooleanExpr, scope string) elastic.Query {
	if b.IsEmpty() {
		return elastic.NewMatchAllQuery()
	}
	// 字段分组把字段下推到每个子条件
	if b.Field != Empty && b.Field != ImplicitField {
		scope = b.Field
	}

	var q elastic.Query
	switch {
	case b.Left == nil:
		q = elastic.NewMatchAllQuery()
	case b.Right == nil:
		q = c.walkES(b.Left, scope)
	default:
		q = c.esOperator(b, scope)
	}

	if b.Start == OperatorNot {
		q = elastic.NewBoolQuery().MustNot(q)
	}
	return q
}

func (c *Converter) esOperator(b *BooleanExpr, scope string) elastic.Query {
	switch b.Operator {
	case OperatorAnd, OperatorAndSym:
		qs := make([]elastic.Query, 0, 2)
		for _, sub := range collectClauses(b, b.Operator) {
			qs = append(qs, c.walkES(sub, scope))
		}
		return elastic.NewBoolQuery().Must(qs...)
	case OperatorAndNot:
		return elastic.NewBoolQuery().
			Must(c.walkES(b.Left, scope)).
			MustNot(c.walkES(b.Right, scope))
	case OperatorNot:
		return elastic.NewBoolQuery().Should(
			c.walkES(b.Left, scope),
			elastic.NewBoolQuery().MustNot(c.walkES(b.Right, scope)),
		)
	case OperatorOrNot:
		return elastic.NewBoolQuery().
			Should(c.walkES(b.Left, scope)).
			MustNot(c.walkES(b.Right, scope))
	default:
		// OR、|| 和隐式操作符都按 should 处理
		qs := make([]elastic.Query, 0, 2)
		for _, sub := range collectClauses(b, b.Operator) {
			qs = append(qs, c.walkES(sub, scope))
		}
		return elastic.NewBoolQuery().Should(qs...)
	}
}

func (c *Converter) esTerm(f *FieldExpr, scope string) elastic.Query {
	field := c.esField(f.Field, scope)

	var q elastic.Query
	switch {
	case f.Similarity != nil:
		target := field
		if target == Empty {
			target = DefaultLogField
		}
		q = elastic.NewFuzzyQuery(target, f.Term).Fuzziness(cast.ToString(*f.Similarity))
	case field == Empty:
		q = c.esDefaultField(f)
	case hasWildcard(f.Term):
		wq := elastic.NewWildcardQuery(field, f.Term)
		if f.Boost != nil {
			wq.Boost(*f.Boost)
		}
		q = wq
	case f.Quoted || f.Proximity != nil || c.es.isText(field):
		mq := elastic.NewMatchPhraseQuery(field, f.Term)
		if f.Proximity != nil {
			mq.Slop(*f.Proximity)
		}
		if f.Boost != nil {
			mq.Boost(*f.Boost)
		}
		q = mq
	default:
		tq := elastic.NewTermQuery(field, f.Term)
		if f.Boost != nil {
			tq.Boost(*f.Boost)
		}
		q = tq
	}

	switch f.Prefix {
	case PrefixProhibit, PrefixNegate:
		q = elastic.NewBoolQuery().MustNot(q)
	}
	return q
}

// esDefaultField 无字段条件走 query_string,保持与日志检索一致的缺省行为
func (c *Converter) esDefaultField(f *FieldExpr) elastic.Query {
	if f.Quoted && f.Proximity != nil {
		mq := elastic.NewMatchPhraseQuery(DefaultLogField, f.Term).Slop(*f.Proximity)
		if f.Boost != nil {
			mq.Boost(*f.Boost)
		}
		return mq
	}

	queryString := f.Term
	if f.Quoted {
		queryString = `"` + f.Term + `"`
	}
	q := elastic.NewQueryStringQuery(queryString).
		AnalyzeWildcard(true).
		Field("*").
		Field("__*").
		Lenient(true)
	if f.Boost != nil {
		q = q.Boost(*f.Boost)
	}
	return q
}

func (c *Converter) esRange(r *RangeExpr, scope string) elastic.Query {
	field := c.esField(r.Field, scope)
	if field == Empty {
		field = DefaultLogField
	}
	q := elastic.NewRangeQuery(field)
	q.IncludeLower(r.Inclusive == InclusiveBoth || r.Inclusive == InclusiveLeft)
	q.IncludeUpper(r.Inclusive == InclusiveBoth || r.Inclusive == InclusiveRight)
	if r.TermMin != "*" {
		q.From(rangeBound(r.TermMin))
	}
	if r.TermMax != "*" {
		q.To(rangeBound(r.TermMax))
	}
	return q
}

func (c *Converter) esField(field, scope string) string {
	if field != Empty && field != ImplicitField {
		return c.es.getAlias(field)
	}
	if scope != Empty {
		return c.es.getAlias(scope)
	}
	return Empty
}

// rangeBound 数值端点转成数字,其余原样传递
func rangeBound(v string) interface{} {
	if isNumeric(v) {
		return cast.ToFloat64(v)
	}
	return v
}
