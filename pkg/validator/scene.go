package validator

import (
	"katydid-common-utils/pkg/enums"
)

// Scene 验证场景标识符，使用位运算支持场景组合
//
// 设计说明：
// - 业务层按场景注册规则表（map[Scene]xxx），同一模型在不同场景下走不同规则
// - 具体场景是独立的位，可用 Add/Has 组合判断
// - SceneNone/SceneAll 是组合哨兵，不算具体场景成员
type Scene int64

// 组合哨兵
const (
	SceneNone Scene = 0  // 无场景
	SceneAll  Scene = -1 // 所有场景(111...111)
)

// 预定义的具体验证场景
const (
	SceneCreate Scene = 1 << iota // 创建场景
	SceneUpdate                   // 更新场景
	SceneDelete                   // 删除场景
	SceneQuery                    // 查询场景
)

// Has 检查是否包含指定场景
func (s Scene) Has(scene Scene) bool {
	return s&scene != 0
}

// Add 添加场景
func (s Scene) Add(scene Scene) Scene {
	return s | scene
}

// Remove 移除场景
func (s Scene) Remove(scene Scene) Scene {
	return s &^ scene
}

// Values 实现 enums.Enumerable，返回全部具体场景
// 不包含 SceneNone/SceneAll 哨兵，顺序与位序一致
func (Scene) Values() []Scene {
	return []Scene{SceneCreate, SceneUpdate, SceneDelete, SceneQuery}
}

// ValidateSceneTable 验证场景表是否给每个具体场景都配了恰好一个条目
// 规则表漏配场景是典型的初始化错误，建议在包初始化或测试里断言
func ValidateSceneTable[V any](table map[Scene]V) bool {
	return enums.ValidateCoverageOf(table, SceneNone)
}

// CheckSceneTable ValidateSceneTable 的诊断形式，报告漏配/多配的场景
func CheckSceneTable[V any](table map[Scene]V) *enums.CoverageReport[Scene] {
	return enums.CheckCoverage(table, Scene(0).Values())
}
