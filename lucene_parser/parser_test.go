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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/internal/json"
	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/log"
)

func TestMain(m *testing.M) {
	log.InitTestLogger()
	os.Exit(m.Run())
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// stripLocations 结构比较时忽略位置信息
func stripLocations(e Expr) Expr {
	switch v := e.(type) {
	case *BooleanExpr:
		v.FieldLocation = nil
		stripLocations(v.Left)
		stripLocations(v.Right)
	case *FieldExpr:
		v.FieldLocation = nil
		v.TermLocation = nil
	case *RangeExpr:
		v.FieldLocation = nil
	}
	return e
}

func TestParse(t *testing.T) {
	testCases := map[string]struct {
		q string
		e Expr
	}{
		"empty": {
			q: "",
			e: &BooleanExpr{},
		},
		"blank": {
			q: "   \t\n",
			e: &BooleanExpr{},
		},
		"single term": {
			q: "foo",
			e: &FieldExpr{Field: ImplicitField, Term: "foo"},
		},
		"field term": {
			q: "foo:bar",
			e: &FieldExpr{Field: "foo", Term: "bar"},
		},
		"field term with space after colon": {
			q: "foo: bar",
			e: &FieldExpr{Field: "foo", Term: "bar"},
		},
		"implicit operator": {
			q: "foo bar",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "foo"},
				Operator: ImplicitOperator,
				Right:    &FieldExpr{Field: ImplicitField, Term: "bar"},
			},
		},
		"implicit chain nests right": {
			q: "foo bar baz",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "foo"},
				Operator: ImplicitOperator,
				Right: &BooleanExpr{
					Left:     &FieldExpr{Field: ImplicitField, Term: "bar"},
					Operator: ImplicitOperator,
					Right:    &FieldExpr{Field: ImplicitField, Term: "baz"},
				},
			},
		},
		"and": {
			q: "a AND b",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "a"},
				Operator: OperatorAnd,
				Right:    &FieldExpr{Field: ImplicitField, Term: "b"},
			},
		},
		"and symbol": {
			q: "a && b",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "a"},
				Operator: OperatorAndSym,
				Right:    &FieldExpr{Field: ImplicitField, Term: "b"},
			},
		},
		"or symbol": {
			q: "a || b",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "a"},
				Operator: OperatorOrSym,
				Right:    &FieldExpr{Field: ImplicitField, Term: "b"},
			},
		},
		"and not": {
			q: "a AND NOT b",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "a"},
				Operator: OperatorAndNot,
				Right:    &FieldExpr{Field: ImplicitField, Term: "b"},
			},
		},
		"mixed operators nest right": {
			q: "a OR b AND c",
			e: &BooleanExpr{
				Left:     &FieldExpr{Field: ImplicitField, Term: "a"},
				Operator: OperatorOr,
				Right: &BooleanExpr{
					Left:     &FieldExpr{Field: ImplicitField, Term: "b"},
					Operator: OperatorAnd,
					Right:    &FieldExpr{Field: ImplicitField, Term: "c"},
				},
			},
		},
		"operator only": {
			q: "OR",
			e: &BooleanExpr{Operator: OperatorOr},
		},
		"operator only keeps last": {
			q: "OR AND",
			e: &BooleanExpr{Operator: OperatorAnd},
		},
		"leading operator kept as start": {
			q: "OR AND foo",
			e: &BooleanExpr{
				Start: OperatorAnd,
				Left:  &FieldExpr{Field: ImplicitField, Term: "foo"},
			},
		},
		"leading not": {
			q: "NOT a",
			e: &BooleanExpr{
				Start: OperatorNot,
				Left:  &FieldExpr{Field: ImplicitField, Term: "a"},
			},
		},
		"prefix prohibit": {
			q: "-foo",
			e: &FieldExpr{Field: ImplicitField, Term: "foo", Prefix: PrefixProhibit},
		},
		"prefix require": {
			q: "+foo",
			e: &FieldExpr{Field: ImplicitField, Term: "foo", Prefix: PrefixRequire},
		},
		"prefix negate": {
			q: "!foo",
			e: &FieldExpr{Field: ImplicitField, Term: "foo", Prefix: PrefixNegate},
		},
		"prefix belongs to fieldname": {
			q: "-field:x",
			e: &FieldExpr{Field: "-field", Term: "x"},
		},
		"quoted term": {
			q: `"fizz buzz"`,
			e: &FieldExpr{Field: ImplicitField, Term: "fizz buzz", Quoted: true},
		},
		"quoted proximity": {
			q: `"fizz buzz"~5`,
			e: &FieldExpr{Field: ImplicitField, Term: "fizz buzz", Quoted: true, Proximity: iptr(5)},
		},
		"fuzzy default": {
			q: "foo~",
			e: &FieldExpr{Field: ImplicitField, Term: "foo", Similarity: fptr(0.5)},
		},
		"fuzzy with boost": {
			q: "foo~0.8^4",
			e: &FieldExpr{Field: ImplicitField, Term: "foo", Similarity: fptr(0.8), Boost: fptr(4)},
		},
		"boost": {
			q: "title:fast^2",
			e: &FieldExpr{Field: "title", Term: "fast", Boost: fptr(2)},
		},
		"range both": {
			q: "foo:[bar TO baz]",
			e: &RangeExpr{Field: "foo", TermMin: "bar", TermMax: "baz", Inclusive: InclusiveBoth},
		},
		"range none": {
			q: "foo:{bar TO baz}",
			e: &RangeExpr{Field: "foo", TermMin: "bar", TermMax: "baz", Inclusive: InclusiveNone},
		},
		"range left": {
			q: "age:[18 TO 30}",
			e: &RangeExpr{Field: "age", TermMin: "18", TermMax: "30", Inclusive: InclusiveLeft},
		},
		"range right": {
			q: "age:{18 TO 30]",
			e: &RangeExpr{Field: "age", TermMin: "18", TermMax: "30", Inclusive: InclusiveRight},
		},
		"range open upper": {
			q: "time:[2020-01-01 TO *]",
			e: &RangeExpr{Field: "time", TermMin: "2020-01-01", TermMax: "*", Inclusive: InclusiveBoth},
		},
		"parentheses": {
			q: "(a OR b)",
			e: &BooleanExpr{
				Left:          &FieldExpr{Field: ImplicitField, Term: "a"},
				Operator:      OperatorOr,
				Right:         &FieldExpr{Field: ImplicitField, Term: "b"},
				Parenthesized: true,
			},
		},
		"field group": {
			q: "status:(active OR pending)",
			e: &BooleanExpr{
				Left:          &FieldExpr{Field: ImplicitField, Term: "active"},
				Operator:      OperatorOr,
				Right:         &FieldExpr{Field: ImplicitField, Term: "pending"},
				Parenthesized: true,
				Field:         "status",
			},
		},
		"parenthesized left": {
			q: "(foo OR bar) AND baz",
			e: &BooleanExpr{
				Left: &BooleanExpr{
					Left:          &FieldExpr{Field: ImplicitField, Term: "foo"},
					Operator:      OperatorOr,
					Right:         &FieldExpr{Field: ImplicitField, Term: "bar"},
					Parenthesized: true,
				},
				Operator: OperatorAnd,
				Right:    &FieldExpr{Field: ImplicitField, Term: "baz"},
			},
		},
		"range without field": {
			q: "[1 TO 5]",
			e: &RangeExpr{Field: ImplicitField, TermMin: "1", TermMax: "5", Inclusive: InclusiveBoth},
		},
		"escape kept verbatim": {
			q: `foo\:bar`,
			e: &FieldExpr{Field: ImplicitField, Term: `foo\:bar`},
		},
	}

	for name, c := range testCases {
		t.Run(name, func(t *testing.T) {
			e, err := Parse(c.q)
			assert.NoError(t, err)
			assert.Equal(t, c.e, stripLocations(e))
		})
	}
}

func TestParseLocation(t *testing.T) {
	e, err := Parse("foo:bar")
	assert.NoError(t, err)
	f, ok := e.(*FieldExpr)
	assert.True(t, ok)
	assert.Equal(t, &Span{
		Start: Position{Offset: 0, Line: 1, Column: 1},
		End:   Position{Offset: 3, Line: 1, Column: 4},
	}, f.FieldLocation)
	assert.Equal(t, &Span{
		Start: Position{Offset: 4, Line: 1, Column: 5},
		End:   Position{Offset: 7, Line: 1, Column: 8},
	}, f.TermLocation)
}

func TestParseError(t *testing.T) {
	testCases := map[string]string{
		"orphan colon":       "foo:",
		"unterminated quote": `"unterminated`,
		"unclosed paren":     "(a",
		"orphan paren":       "a)",
		"unclosed range":     "foo:[bar TO",
		"range without to":   "foo:[bar baz]",
	}

	for name, q := range testCases {
		t.Run(name, func(t *testing.T) {
			e, err := Parse(q)
			assert.Nil(t, e)
			assert.Error(t, err)
			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
			assert.NotEmpty(t, syntaxErr.Expected)
		})
	}

	_, err := Parse("foo:")
	var syntaxErr *SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, Position{Offset: 4, Line: 1, Column: 5}, syntaxErr.Position)
}

func TestRoundTrip(t *testing.T) {
	queries := []string{
		"foo",
		"foo bar",
		"a AND b",
		"a OR b AND c",
		"a && b",
		"NOT a",
		"-foo",
		"+foo",
		"foo:bar",
		"-field:x",
		"foo:[bar TO baz]",
		"age:{18 TO 30]",
		"(a OR b)",
		"status:(active OR pending)",
		`"fizz buzz"~5`,
		"foo~0.8^4",
		"title:fast^2",
		"OR AND foo",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			first, err := Parse(q)
			assert.NoError(t, err)
			rendered := exprString(first)
			second, err := Parse(rendered)
			assert.NoError(t, err)
			assert.Equal(t, stripLocations(first), stripLocations(second), "rendered as %q", rendered)
		})
	}
}

func TestExprJSON(t *testing.T) {
	testCases := map[string]struct {
		q string
		j string
	}{
		"empty": {
			q: "",
			j: `{}`,
		},
		"operator only": {
			q: "OR",
			j: `{"operator":"OR"}`,
		},
		"single term": {
			q: "foo",
			j: `{"field":"<implicit>","term":"foo","quoted":false,"regex":false}`,
		},
		"range": {
			q: "age:[18 TO 30}",
			j: `{"field":"age","term_min":"18","term_max":"30","inclusive":"left"}`,
		},
	}

	for name, c := range testCases {
		t.Run(name, func(t *testing.T) {
			e, err := Parse(c.q)
			assert.NoError(t, err)
			actual, err := json.MarshalString(stripLocations(e))
			assert.NoError(t, err)
			assert.Equal(t, c.j, actual)
		})
	}
}
