package sqlx

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JsonColumn 以 JSON 文本存储的列，Valid 为 false 时写入 NULL
type JsonColumn[T any] struct {
	Val   T
	Valid bool
}

func NewJsonColumn[T any](val T) JsonColumn[T] {
	return JsonColumn[T]{Val: val, Valid: true}
}

func (j *JsonColumn[T]) Scan(src any) error {
	var bs []byte
	switch val := src.(type) {
	case nil:
		return nil
	case []byte:
		bs = val
	case string:
		bs = []byte(val)
	default:
		return fmt.Errorf("不支持 src 类型 %T", src)
	}
	if len(bs) == 0 {
		return nil
	}
	if err := json.Unmarshal(bs, &j.Val); err != nil {
		return err
	}
	j.Valid = true
	return nil
}

// Value 使用值接收者，gorm 写入非指针字段时才能识别为 driver.Valuer
func (j JsonColumn[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	res, err := json.Marshal(j.Val)
	if err != nil {
		return nil, err
	}
	return string(res), nil
}
