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
	"github.com/pkg/errors"

	"github.com/TencentBlueKing/bkmonitor-datalink/pkg/lucene-ast/metadata"
)

// LabelMap 提取查询里的正向 field -> value 条件,负向条件整体跳过
func LabelMap(e Expr, add func(key, operator string, values ...string)) error {
	return labelWalk(e, Empty, add)
}

func labelWalk(e Expr, scope string, add func(key, operator string, values ...string)) error {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *BooleanExpr:
		if v.IsEmpty() {
			return nil
		}
		if v.Start == OperatorNot {
			return nil
		}
		if v.Field != Empty && v.Field != ImplicitField {
			scope = v.Field
		}
		if err := labelWalk(v.Left, scope, add); err != nil {
			return err
		}
		switch v.Operator {
		case OperatorNot, OperatorAndNot, OperatorOrNot:
			return nil
		}
		return labelWalk(v.Right, scope, add)
	case *FieldExpr:
		switch v.Prefix {
		case PrefixProhibit, PrefixNegate:
			return nil
		}
		key := v.Field
		if key == Empty || key == ImplicitField {
			key = scope
		}
		if key == Empty {
			return nil
		}
		operator := metadata.ConditionEqual
		if hasWildcard(v.Term) {
			operator = metadata.ConditionContains
		}
		add(key, operator, v.Term)
		return nil
	case *RangeExpr:
		return nil
	}
	return errors.Errorf("unexpected expression type: %T", e)
}
