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
	"strconv"
	"strings"
)

const (
	// escapableChars 反斜杠后允许出现的字符,转义对原样保留,不做解码
	escapableChars = `+-!(){}[]^"?:\&|'/~* `
	// termExcludeChars 未加引号词项的终止字符
	termExcludeChars = ":{}()\"^~[] \t\r\n\f"
	// rangedExcludeChars 区间端点额外终止字符
	rangedExcludeChars = termExcludeChars + "/"
)

// operatorKeywords 不能作为裸词项出现的保留字
var operatorKeywords = map[string]struct{}{
	OperatorAnd:    {},
	OperatorOr:     {},
	OperatorNot:    {},
	OperatorAndSym: {},
	OperatorOrSym:  {},
}

// cursor 带回溯的扫描游标,同时记录最远失败位置用于报错
type cursor struct {
	src      []rune
	pos      int
	furthest int
	expected []string
}

func newCursor(s string) *cursor {
	return &cursor{src: []rune(s)}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) save() int {
	return c.pos
}

func (c *cursor) restore(p int) {
	c.pos = p
}

func (c *cursor) advance() rune {
	r := c.src[c.pos]
	c.pos++
	return r
}

// fail 记录一次预期失败,只保留最远位置上的候选
func (c *cursor) fail(expected string) {
	if c.pos > c.furthest {
		c.furthest = c.pos
		c.expected = c.expected[:0]
	}
	if c.pos == c.furthest {
		for _, e := range c.expected {
			if e == expected {
				return
			}
		}
		c.expected = append(c.expected, expected)
	}
}

func (c *cursor) literal(s string) bool {
	p := c.pos
	for _, r := range s {
		if p >= len(c.src) || c.src[p] != r {
			c.fail(strconv.Quote(s))
			return false
		}
		p++
	}
	c.pos = p
	return true
}

func (c *cursor) position(offset int) Position {
	line, column := 1, 1
	for i := 0; i < offset && i < len(c.src); i++ {
		if c.src[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Position{Offset: offset, Line: line, Column: column}
}

func (c *cursor) span(from, to int) *Span {
	return &Span{Start: c.position(from), End: c.position(to)}
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\f':
		return true
	}
	return false
}

func (c *cursor) skipSpace() int {
	n := 0
	for !c.eof() && isSpaceRune(c.peek()) {
		c.pos++
		n++
	}
	return n
}

// unquotedTerm 扫描未加引号的词项,遇到终止字符或输入结束停止
func (c *cursor) unquotedTerm(exclude string) (string, bool) {
	start := c.save()
	var sb strings.Builder
	for !c.eof() {
		r := c.peek()
		if r == '\\' && c.pos+1 < len(c.src) && strings.ContainsRune(escapableChars, c.src[c.pos+1]) {
			sb.WriteRune(c.advance())
			sb.WriteRune(c.advance())
			continue
		}
		if strings.ContainsRune(exclude, r) {
			break
		}
		sb.WriteRune(c.advance())
	}
	if sb.Len() == 0 {
		c.fail("term")
		c.restore(start)
		return "", false
	}
	return sb.String(), true
}

// termWord 普通词项,保留字不能作为裸词项
func (c *cursor) termWord() (string, bool) {
	start := c.save()
	s, ok := c.unquotedTerm(termExcludeChars)
	if !ok {
		return "", false
	}
	if _, reserved := operatorKeywords[s]; reserved {
		c.restore(start)
		c.fail("term")
		return "", false
	}
	return s, true
}

// rangedWord 区间端点,允许保留字和通配符 *
func (c *cursor) rangedWord() (string, bool) {
	return c.unquotedTerm(rangedExcludeChars)
}

// quotedTerm 引号词项,返回去掉引号的内容,转义对原样保留
func (c *cursor) quotedTerm() (string, bool) {
	start := c.save()
	if c.peek() != '"' {
		c.fail(`'"'`)
		return "", false
	}
	c.advance()
	var sb strings.Builder
	for {
		if c.eof() {
			c.fail(`'"'`)
			c.restore(start)
			return "", false
		}
		r := c.peek()
		if r == '\\' {
			if c.pos+1 < len(c.src) && strings.ContainsRune(escapableChars, c.src[c.pos+1]) {
				sb.WriteRune(c.advance())
				sb.WriteRune(c.advance())
				continue
			}
			c.fail("escape")
			c.restore(start)
			return "", false
		}
		if r == '"' {
			c.advance()
			return sb.String(), true
		}
		sb.WriteRune(c.advance())
	}
}

func (c *cursor) integer() (int, bool) {
	start := c.save()
	n, digits := 0, 0
	for !c.eof() && c.peek() >= '0' && c.peek() <= '9' {
		n = n*10 + int(c.advance()-'0')
		digits++
	}
	if digits == 0 {
		c.fail("digit")
		c.restore(start)
		return 0, false
	}
	return n, true
}

// decimal 只接受 0.x 形式的小数
func (c *cursor) decimal() (float64, bool) {
	start := c.save()
	if !c.literal("0.") {
		c.restore(start)
		return 0, false
	}
	digStart := c.pos
	for !c.eof() && c.peek() >= '0' && c.peek() <= '9' {
		c.advance()
	}
	if c.pos == digStart {
		c.fail("digit")
		c.restore(start)
		return 0, false
	}
	v, err := strconv.ParseFloat(string(c.src[start:c.pos]), 64)
	if err != nil {
		c.restore(start)
		return 0, false
	}
	return v, true
}

func (c *cursor) prefixOp() (string, bool) {
	switch c.peek() {
	case '+':
		c.advance()
		return PrefixRequire, true
	case '-':
		c.advance()
		return PrefixProhibit, true
	case '!':
		c.advance()
		return PrefixNegate, true
	}
	c.fail("prefix")
	return "", false
}

// fuzzyModifier ~ 或 ~0.x,缺省相似度 0.5
func (c *cursor) fuzzyModifier() (*float64, bool) {
	if c.peek() != '~' {
		c.fail(`'~'`)
		return nil, false
	}
	c.advance()
	if v, ok := c.decimal(); ok {
		return &v, true
	}
	v := 0.5
	return &v, true
}

// proximityModifier ~N,N 为整数
func (c *cursor) proximityModifier() (*int, bool) {
	start := c.save()
	if c.peek() != '~' {
		c.fail(`'~'`)
		return nil, false
	}
	c.advance()
	n, ok := c.integer()
	if !ok {
		c.restore(start)
		return nil, false
	}
	return &n, true
}

// boostModifier ^N 或 ^0.x
func (c *cursor) boostModifier() (*float64, bool) {
	start := c.save()
	if c.peek() != '^' {
		c.fail(`'^'`)
		return nil, false
	}
	c.advance()
	if v, ok := c.decimal(); ok {
		return &v, true
	}
	if n, ok := c.integer(); ok {
		v := float64(n)
		return &v, true
	}
	c.restore(start)
	return nil, false
}
