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
	"sort"
	"strings"
)

// SyntaxError 携带最远到达位置及该位置上的候选记号
type SyntaxError struct {
	Position Position
	Expected []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s",
		e.Position.Line, e.Position.Column, strings.Join(e.Expected, ", "))
}

// operators 有序候选,长操作符优先
var operators = []string{
	OperatorOrNot, OperatorAndNot, OperatorOr, OperatorAnd, OperatorNot, OperatorAndSym, OperatorOrSym,
}

type parser struct {
	c *cursor
}

// Parse 解析查询串为表达式树,空白输入返回空节点
func Parse(query string) (Expr, error) {
	p := &parser{c: newCursor(query)}
	p.c.skipSpace()
	if p.c.eof() {
		return &BooleanExpr{}, nil
	}
	node, ok := p.parseNode()
	if !ok {
		return nil, p.syntaxError()
	}
	for !p.c.eof() {
		if _, more := p.parseNode(); !more {
			break
		}
	}
	if !p.c.eof() {
		return nil, p.syntaxError()
	}
	return unwrapRoot(node), nil
}

// unwrapRoot 根节点若只是单纯包一层 left,直接返回内层表达式
func unwrapRoot(n *BooleanExpr) Expr {
	if n.Operator == "" && n.Right == nil && n.Start == "" &&
		n.Field == "" && !n.Parenthesized && n.Left != nil {
		return n.Left
	}
	return n
}

func (p *parser) syntaxError() error {
	c := p.c
	expected := make([]string, len(c.expected))
	copy(expected, c.expected)
	sort.Strings(expected)
	return &SyntaxError{Position: c.position(c.furthest), Expected: expected}
}

// parseOperatorExp 操作符两侧必须有空白或到达输入结束
func (p *parser) parseOperatorExp() (string, bool) {
	c := p.c
	start := c.save()
	c.skipSpace()
	for _, op := range operators {
		opStart := c.save()
		if !c.literal(op) {
			c.restore(opStart)
			continue
		}
		if c.eof() || c.skipSpace() > 0 {
			return op, true
		}
		c.restore(opStart)
	}
	c.restore(start)
	return "", false
}

// parseNode 四个有序备选:
//  1. 仅操作符直到输入结束,最后一个操作符生效
//  2. 前导操作符 + 词组,操作符保留为 start
//  3. 前导操作符 + 节点,操作符被丢弃
//  4. 词组开头
func (p *parser) parseNode() (*BooleanExpr, bool) {
	c := p.c
	save := c.save()

	if op, ok := p.parseOperatorExp(); ok && c.eof() {
		return &BooleanExpr{Operator: op}, true
	}
	c.restore(save)

	if start, ok := p.parseOperatorExp(); ok {
		if left, ok2 := p.parseGroupExp(); ok2 {
			ops, rights := p.parseTail()
			return p.assembleNode(start, left, ops, rights), true
		}
		c.restore(save)

		if _, ok2 := p.parseOperatorExp(); ok2 {
			if n, ok3 := p.parseNode(); ok3 {
				return n, true
			}
		}
		c.restore(save)
	}

	left, ok := p.parseGroupExp()
	if !ok {
		c.restore(save)
		return nil, false
	}
	ops, rights := p.parseTail()
	return p.assembleNode("", left, ops, rights), true
}

func (p *parser) parseTail() ([]string, []*BooleanExpr) {
	var ops []string
	for {
		op, ok := p.parseOperatorExp()
		if !ok {
			break
		}
		ops = append(ops, op)
	}
	var rights []*BooleanExpr
	for {
		n, ok := p.parseNode()
		if !ok {
			break
		}
		rights = append(rights, n)
	}
	return ops, rights
}

// assembleNode 没有右侧时操作符被丢弃;右侧只是单纯包一层 left 时拆开挂接
func (p *parser) assembleNode(start string, left Expr, ops []string, rights []*BooleanExpr) *BooleanExpr {
	n := &BooleanExpr{Start: start, Left: left}
	if len(rights) == 0 {
		return n
	}
	n.Operator = ImplicitOperator
	if len(ops) > 0 {
		n.Operator = ops[0]
	}
	r := rights[0]
	if r.Operator == "" && r.Right == nil && r.Start == "" {
		n.Right = r.Left
	} else {
		n.Right = r
	}
	return n
}

func (p *parser) parseGroupExp() (Expr, bool) {
	c := p.c
	if e, ok := p.parseFieldExp(); ok {
		c.skipSpace()
		return e, true
	}
	if e, ok := p.parseParenExp(); ok {
		c.skipSpace()
		return e, true
	}
	return nil, false
}

func (p *parser) parseParenExp() (*BooleanExpr, bool) {
	c := p.c
	save := c.save()
	if c.peek() != '(' {
		c.fail(`'('`)
		return nil, false
	}
	c.advance()
	c.skipSpace()
	n, ok := p.parseNode()
	if !ok {
		c.restore(save)
		return nil, false
	}
	for {
		if _, more := p.parseNode(); !more {
			break
		}
	}
	if c.peek() != ')' {
		c.fail(`')'`)
		c.restore(save)
		return nil, false
	}
	c.advance()
	n.Parenthesized = true
	return n, true
}

// parseFieldExp 有序备选:区间、字段分组、词项,字段名可选
func (p *parser) parseFieldExp() (Expr, bool) {
	c := p.c
	save := c.save()
	field, fieldSpan, hasField := p.parseFieldName()

	if r, ok := p.parseRangeExp(); ok {
		r.Field = ImplicitField
		if hasField {
			r.Field = field
			r.FieldLocation = fieldSpan
		}
		return r, true
	}

	if hasField {
		if g, ok := p.parseParenExp(); ok {
			g.Field = field
			g.FieldLocation = fieldSpan
			return g, true
		}
	}

	if t, ok := p.parseTermExp(); ok {
		t.Field = ImplicitField
		if hasField {
			t.Field = field
			t.FieldLocation = fieldSpan
		}
		return t, true
	}

	c.restore(save)
	return nil, false
}

// parseFieldName 字段名走词项规则,冒号后允许空白
func (p *parser) parseFieldName() (string, *Span, bool) {
	c := p.c
	save := c.save()
	start := c.pos
	name, ok := c.termWord()
	if !ok {
		c.restore(save)
		return "", nil, false
	}
	end := c.pos
	if c.peek() != ':' {
		c.fail(`':'`)
		c.restore(save)
		return "", nil, false
	}
	c.advance()
	c.skipSpace()
	return name, c.span(start, end), true
}

// parseRangeExp TO 两侧要求空白,括号混用决定区间开闭
func (p *parser) parseRangeExp() (*RangeExpr, bool) {
	c := p.c
	save := c.save()
	open := c.peek()
	if open != '[' && open != '{' {
		c.fail(`'[' or '{'`)
		return nil, false
	}
	c.advance()
	c.skipSpace()
	min, ok := c.rangedWord()
	if !ok {
		c.restore(save)
		return nil, false
	}
	if c.skipSpace() == 0 {
		c.fail("whitespace")
		c.restore(save)
		return nil, false
	}
	if !c.literal("TO") {
		c.restore(save)
		return nil, false
	}
	if c.skipSpace() == 0 {
		c.fail("whitespace")
		c.restore(save)
		return nil, false
	}
	max, ok := c.rangedWord()
	if !ok {
		c.restore(save)
		return nil, false
	}
	c.skipSpace()
	closing := c.peek()
	if closing != ']' && closing != '}' {
		c.fail(`']' or '}'`)
		c.restore(save)
		return nil, false
	}
	c.advance()

	inclusive := InclusiveNone
	switch {
	case open == '[' && closing == ']':
		inclusive = InclusiveBoth
	case open == '[' && closing == '}':
		inclusive = InclusiveLeft
	case open == '{' && closing == ']':
		inclusive = InclusiveRight
	}
	return &RangeExpr{TermMin: min, TermMax: max, Inclusive: inclusive}, true
}

// parseTermExp 引号词项接邻近度和权重,普通词项接相似度和权重
func (p *parser) parseTermExp() (*FieldExpr, bool) {
	c := p.c
	save := c.save()
	t := &FieldExpr{}
	if pre, ok := c.prefixOp(); ok {
		t.Prefix = pre
	}
	termStart := c.pos
	if q, ok := c.quotedTerm(); ok {
		t.Term = q
		t.Quoted = true
		t.TermLocation = c.span(termStart, c.pos)
		if prox, ok2 := c.proximityModifier(); ok2 {
			t.Proximity = prox
		}
		if b, ok2 := c.boostModifier(); ok2 {
			t.Boost = b
		}
		return t, true
	}
	if w, ok := c.termWord(); ok {
		t.Term = w
		t.TermLocation = c.span(termStart, c.pos)
		if sim, ok2 := c.fuzzyModifier(); ok2 {
			t.Similarity = sim
		}
		if b, ok2 := c.boostModifier(); ok2 {
			t.Boost = b
		}
		return t, true
	}
	c.restore(save)
	return nil, false
}
