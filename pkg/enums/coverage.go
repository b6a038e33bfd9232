package enums

// ValidateCoverage 验证 map 是否恰好覆盖给定键集：每个键恰好一个条目，无缺失、无多余
//
// 验证流程：
//  1. 比较条目数与键集大小，不相等直接返回 false
//  2. 逐键检查 map 成员资格，任何一个缺失立即返回 false
//
// 条目数相等加上逐键检查足以排除"多余键"：map 里若存在键集之外的键，
// 要么条目数对不上，要么必然挤掉了某个键集内的键导致成员检查失败。
// 单靠条目数不能排除"一个错键顶替一个缺键"的情况，所以第 2 步不可省略。
//
// 参数：
//
//	m: 待验证的 map，本函数只读不改
//	allKeys: 键类型的全部成员，必须不重复（见 Enumerable 的实现约定）
//
// 返回：
//
//	恰好覆盖时返回 true，否则返回 false
//
// 边界：空键集配空 map 返回 true（0 个条目，0 个期望）
// 线程安全：纯只读谓词，无副作用，可重入；调用期间 map 不被其他协程写入即可
func ValidateCoverage[K comparable, V any](m map[K]V, allKeys []K) bool {
	if len(m) != len(allKeys) {
		return false
	}
	for _, key := range allKeys {
		if _, ok := m[key]; !ok {
			return false
		}
	}
	return true
}

// ValidateCoverageOf 验证 map 是否恰好覆盖可枚举键类型的全部成员
// 即 ValidateCoverage(m, e.Values()) 的便捷形式
func ValidateCoverageOf[K comparable, V any](m map[K]V, e Enumerable[K]) bool {
	if e == nil {
		return len(m) == 0
	}
	return ValidateCoverage(m, e.Values())
}

// MustValidateCoverage 断言形式的覆盖验证，失败时 panic
//
// 仅用于测试和不变量检查场景，绝不用于用户可见的控制流
// panic 消息携带缺失/多余键的诊断信息（见 CheckCoverage）
func MustValidateCoverage[K comparable, V any](m map[K]V, allKeys []K) {
	if report := CheckCoverage(m, allKeys); !report.Ok() {
		panic(report.Error())
	}
}

// MustValidateCoverageOf MustValidateCoverage 的 Enumerable 便捷形式
func MustValidateCoverageOf[K comparable, V any](m map[K]V, e Enumerable[K]) {
	if e == nil {
		if len(m) != 0 {
			panic("enums: coverage mismatch: nil enumeration with non-empty map")
		}
		return
	}
	MustValidateCoverage(m, e.Values())
}
