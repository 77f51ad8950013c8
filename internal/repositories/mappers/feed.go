// Package mappers 提供文档库原始值与领域类型之间的转换工具。
package mappers

import (
	"fmt"
	"sort"
)

// ToInt32 将 distinct 查询返回的任意数值转换为 int32。
// Mongo 会按写入端的习惯以 int32/int64/double 存储列数。
func ToInt32(value any) (int32, error) {
	switch v := value.(type) {
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	case float64:
		return int32(v), nil
	case int:
		return int32(v), nil
	default:
		return 0, fmt.Errorf("unexpected numeric type %T", value)
	}
}

// ToSortedInt32s 将 distinct 结果集转换为升序且去重的 int32 列表。
func ToSortedInt32s(values []any) ([]int32, error) {
	seen := make(map[int32]struct{}, len(values))
	result := make([]int32, 0, len(values))
	for _, value := range values {
		n, err := ToInt32(value)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}
