// Package condition 实现视图筛选条件值的类型化编解码
//
// 条件值以字符串形式落库，同时记录值类型：
//
//	STRING  原样存储
//	INT     十进制整数
//	FLOAT   十进制小数
//	ARRAY   JSON 数组
package condition

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ValueType 条件值类型
type ValueType string

const (
	TypeString ValueType = "STRING"
	TypeInt    ValueType = "INT"
	TypeFloat  ValueType = "FLOAT"
	TypeArray  ValueType = "ARRAY"
)

// ErrInvalidValueType 未知的值类型标识
var ErrInvalidValueType = errors.New("invalid enum")

// Value 条件值，仅以下四种实现
type Value interface {
	Type() ValueType
	sealed()
}

type StringValue string

type IntValue int64

type FloatValue float64

type ArrayValue []any

func (StringValue) Type() ValueType { return TypeString }
func (IntValue) Type() ValueType    { return TypeInt }
func (FloatValue) Type() ValueType  { return TypeFloat }
func (ArrayValue) Type() ValueType  { return TypeArray }

func (StringValue) sealed() {}
func (IntValue) sealed()    {}
func (FloatValue) sealed()  {}
func (ArrayValue) sealed()  {}

// ParseValueType 校验值类型标识
func ParseValueType(s string) (ValueType, error) {
	switch t := ValueType(s); t {
	case TypeString, TypeInt, TypeFloat, TypeArray:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidValueType, s)
}

// Encode 编码为存储字符串和值类型，nil 按 STRING 处理且不存值
func Encode(v Value) (string, ValueType, error) {
	switch val := v.(type) {
	case nil:
		return "", TypeString, nil
	case StringValue:
		return string(val), TypeString, nil
	case IntValue:
		return strconv.FormatInt(int64(val), 10), TypeInt, nil
	case FloatValue:
		return strconv.FormatFloat(float64(val), 'f', -1, 64), TypeFloat, nil
	case ArrayValue:
		b, err := json.Marshal([]any(val))
		if err != nil {
			return "", "", fmt.Errorf("encode array value: %w", err)
		}
		return string(b), TypeArray, nil
	}
	return "", "", fmt.Errorf("%w: %T", ErrInvalidValueType, v)
}

// Decode 按值类型还原条件值，空串返回 nil
func Decode(valueType, raw string) (Value, error) {
	t, err := ParseValueType(valueType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	switch t {
	case TypeArray:
		list, err := decodeArray([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode array value %q: %w", raw, err)
		}
		return list, nil
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode int value %q: %w", raw, err)
		}
		return IntValue(n), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("decode float value %q: %w", raw, err)
		}
		return FloatValue(f), nil
	default:
		return StringValue(raw), nil
	}
}

// FromJSON 从请求 JSON 推断条件值
// 推断顺序：数组 -> 整数 -> 小数 -> 字符串；布尔和对象按原始文本作为字符串
func FromJSON(raw []byte) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch c := raw[0]; {
	case c == '[':
		list, err := decodeArray(raw)
		if err != nil {
			return nil, fmt.Errorf("parse array value: %w", err)
		}
		return list, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return parseNumber(string(raw))
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("parse string value: %w", err)
		}
		return StringValue(s), nil
	default:
		return StringValue(raw), nil
	}
}

// decodeArray 数组元素中的数字保留为 json.Number，避免大整数经 float64 丢失精度
func decodeArray(raw []byte) (ArrayValue, error) {
	if !json.Valid(raw) {
		return nil, errors.New("malformed json array")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var list []any
	if err := dec.Decode(&list); err != nil {
		return nil, err
	}
	return ArrayValue(list), nil
}

// parseNumber 超出 int64 范围的整数按字符串保存
func parseNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return IntValue(n), nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return StringValue(s), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse number value %q: %w", s, err)
	}
	return FloatValue(f), nil
}
