package testutil

// Times 计时工具的重复次数类型
//
// 设计说明：
// - 独立类型而非裸 uint64，避免和其他数值参数位置混淆
// - 提供常用数值宽度的转换方法，窄宽度按无检查截断处理（调用方保证范围）
// - 零值合法（MeasureTime 对 0 次直接返回 0），默认值见 DefaultTimes
type Times uint64

// DefaultTimes 默认重复次数，对多数测量场景足够
const DefaultTimes Times = 100000

// TimesOf 从 int 构造 Times，负数按 0 处理
func TimesOf(n int) Times {
	if n < 0 {
		return 0
	}
	return Times(n)
}

// Uint64 转换为 uint64
func (t Times) Uint64() uint64 {
	return uint64(t)
}

// Int 转换为 int
func (t Times) Int() int {
	return int(t)
}

// Uint32 转换为 uint32
func (t Times) Uint32() uint32 {
	return uint32(t)
}

// Int32 转换为 int32
func (t Times) Int32() int32 {
	return int32(t)
}
