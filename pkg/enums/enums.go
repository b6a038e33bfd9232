package enums

// Enumerable 可枚举键类型的能力接口
//
// 设计说明：
// - 抽象"列出封闭类型全部成员"的能力，对应其他语言里的枚举遍历
// - Go 没有原生的枚举遍历机制，由各枚举类型手写或生成全成员访问器
// - 实现方通常是枚举类型自身的任意一个值，或一个空结构体
//
// 实现约定（违反约定时覆盖检查的结果无意义）：
// - Values 必须返回该类型的每个不同成员恰好一次
// - 返回顺序必须是确定的，多次调用结果一致
// - 不允许返回重复成员
//
// 示例：
//
//	type Fruit int
//
//	const (
//	    FruitApple Fruit = iota
//	    FruitBanana
//	    FruitCherry
//	)
//
//	func (Fruit) Values() []Fruit {
//	    return []Fruit{FruitApple, FruitBanana, FruitCherry}
//	}
type Enumerable[K comparable] interface {
	// Values 返回全部成员，不重复、顺序确定
	Values() []K
}
