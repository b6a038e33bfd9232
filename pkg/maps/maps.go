package maps

// Pair 单个内联键值对，用于 map 字面量构造
// 设计说明：
// - 代替重复的 m[k] = v 插入语句，让调用方一行写完初始化
// - 键类型必须是 comparable，以满足 Go 内置 map 的键约束
// - 值类型不做任何约束
type Pair[K comparable, V any] struct {
	// Key 键
	Key K
	// Value 值
	Value V
}

// P 创建一个键值对，Of/OfFast 的简写入口
//
//go:inline
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Of 通用 map 构造器，按顺序插入给定的键值对并返回结果
//
// 插入语义：
// - 与手写 m[k] = v 完全一致，后出现的重复键覆盖先出现的
// - 结果条目数等于不同键的数量
// - 传入零个键值对时返回空 map（非 nil）
func Of[K comparable, V any](pairs ...Pair[K, V]) map[K]V {
	m := make(map[K]V)
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

// OfFast 快速 map 构造器，与 Of 语义完全相同
//
// 设计说明：
// - Go 只有一种内置哈希 map 实现（非加密哈希、种子随机化），
//   所以"快速/非安全"变体与通用变体的差异只剩下容量预分配
// - 按键值对数量精确预分配桶空间，避免插入过程中的增量扩容
// - 重复键仍然遵循后者覆盖前者的语义，此时容量会略有冗余
func OfFast[K comparable, V any](pairs ...Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

// Keys 提取 map 的所有键，容量预分配
// 注意：遍历顺序由 map 迭代决定，不保证稳定
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// ContainsKeys 检查 map 是否包含所有给定的键
// 任何一个键缺失立即返回 false，空键列表返回 true
func ContainsKeys[K comparable, V any](m map[K]V, keys ...K) bool {
	for _, key := range keys {
		if _, ok := m[key]; !ok {
			return false
		}
	}
	return true
}

// FromKeys 按键列表构造 map，值由 value 函数逐键生成
// 重复键会被后出现的覆盖，value 函数对重复键会被多次调用
func FromKeys[K comparable, V any](keys []K, value func(K) V) map[K]V {
	m := make(map[K]V, len(keys))
	for _, key := range keys {
		m[key] = value(key)
	}
	return m
}
