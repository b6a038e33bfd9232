package testutil

import (
	"time"
)

// MeasureTime 重复执行 op 指定次数，返回单次调用的平均耗时
//
// 参数：
//
//	op: 无参无返回的可重复操作，其副作用必须允许重复执行
//	times: 重复次数，传 DefaultTimes 即可满足多数场景
//
// 返回：
//
//	总耗时除以次数的平均值；times 为 0 或 op 为 nil 时不执行，返回 0
//
// 注意：计时覆盖整个循环，包含循环本身的开销，适合量级对比而非精确测量
// 精确的基准测试请用 go test -bench
func MeasureTime(op func(), times Times) time.Duration {
	if op == nil || times == 0 {
		return 0
	}

	start := time.Now()
	for i := uint64(0); i < times.Uint64(); i++ {
		op()
	}
	return time.Since(start) / time.Duration(times)
}
