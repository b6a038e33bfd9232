package enums

import (
	"fmt"
	"strings"

	"katydid-common-utils/pkg/maps"
)

// CoverageReport 覆盖检查的诊断结果
//
// 设计说明：
// - ValidateCoverage 只给二元判定，排查"到底缺了哪个键"时不够用
// - 本类型补上缺失/多余键的明细，供断言失败消息和日志使用
// - Missing 按枚举顺序排列（确定）；Extra 来自 map 遍历，顺序不保证稳定
type CoverageReport[K comparable] struct {
	// Expected 键集大小（期望的条目数）
	Expected int `json:"expected"`
	// Actual map 的实际条目数
	Actual int `json:"actual"`
	// Missing 键集中存在但 map 中缺失的键
	Missing []K `json:"missing,omitempty"`
	// Extra map 中存在但键集之外的键
	Extra []K `json:"extra,omitempty"`
}

// CheckCoverage 覆盖检查的诊断形式，报告缺失与多余的键
//
// 与 ValidateCoverage 的判定完全一致：report.Ok() 为 true
// 当且仅当 ValidateCoverage(m, allKeys) 为 true
// 代价是两次完整扫描和可能的切片分配，热路径请用谓词形式
func CheckCoverage[K comparable, V any](m map[K]V, allKeys []K) *CoverageReport[K] {
	report := &CoverageReport[K]{
		Expected: len(allKeys),
		Actual:   len(m),
	}

	keySet := maps.FromKeys(allKeys, func(K) struct{} { return struct{}{} })

	for _, key := range allKeys {
		if _, ok := m[key]; !ok {
			report.Missing = append(report.Missing, key)
		}
	}
	for key := range m {
		if _, ok := keySet[key]; !ok {
			report.Extra = append(report.Extra, key)
		}
	}
	return report
}

// Ok 是否恰好覆盖
func (r *CoverageReport[K]) Ok() bool {
	return r.Actual == r.Expected && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Error 实现 error 接口，格式化覆盖不匹配的诊断消息
// 恰好覆盖时返回空字符串
func (r *CoverageReport[K]) Error() string {
	if r.Ok() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "enums: coverage mismatch: %d entries, want %d", r.Actual, r.Expected)
	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, "; missing keys: %v", r.Missing)
	}
	if len(r.Extra) > 0 {
		fmt.Fprintf(&b, "; extra keys: %v", r.Extra)
	}
	return b.String()
}

// Err 覆盖不匹配时返回自身作为 error，恰好覆盖时返回 nil
// 便于 if err := CheckCoverage(m, keys).Err(); err != nil { ... } 的写法
func (r *CoverageReport[K]) Err() error {
	if r.Ok() {
		return nil
	}
	return r
}
