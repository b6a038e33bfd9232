package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"katydid-common-utils/pkg/enums"
)

// RegisterCoverage 把枚举覆盖检查注册为 validator/v10 的自定义规则
//
// 注册后，结构体里的 map 字段可以在 tag 里声明覆盖约束：
//
//	type Config struct {
//	    Handlers map[Scene]HandlerFunc `validate:"scene_coverage"`
//	}
//
//	v := validator.New()
//	_ = RegisterCoverage(v, "scene_coverage", Scene(0).Values())
//
// 规则判定与 enums.ValidateCoverage 一致：字段必须是 map（或指向 map 的指针），
// 且恰好覆盖 allKeys 的每个键。nil map 仅在 allKeys 为空时通过
//
// 参数：
//
//	v: 目标验证器实例
//	tag: 规则在 validate tag 里使用的名字
//	allKeys: 键类型的全部成员，不重复
//
// 返回：
//
//	v 为 nil 或底层注册失败时返回错误
func RegisterCoverage[K comparable](v *validator.Validate, tag string, allKeys []K) error {
	if v == nil {
		return fmt.Errorf("validator: register coverage rule %q on nil validator", tag)
	}
	return v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return coversField(fl.Field(), allKeys)
	})
}

// RegisterCoverageOf RegisterCoverage 的 Enumerable 便捷形式
func RegisterCoverageOf[K comparable](v *validator.Validate, tag string, e enums.Enumerable[K]) error {
	if e == nil {
		return fmt.Errorf("validator: register coverage rule %q with nil enumeration", tag)
	}
	return RegisterCoverage(v, tag, e.Values())
}

// coversField 对反射到的字段执行覆盖判定
// tag 是挂在字段上的，这里只能拿到 reflect.Value，无法走泛型 map 的快路径
func coversField[K comparable](field reflect.Value, allKeys []K) bool {
	// 解引用指针字段，nil 指针视为空 map
	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return len(allKeys) == 0
		}
		field = field.Elem()
	}

	if field.Kind() != reflect.Map {
		return false
	}
	if field.Len() != len(allKeys) {
		return false
	}

	keyType := field.Type().Key()
	for _, key := range allKeys {
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(keyType) {
			// 键类型与 map 键类型不一致时尝试转换（如自定义 int 枚举配 int 键）
			if !kv.Type().ConvertibleTo(keyType) {
				return false
			}
			kv = kv.Convert(keyType)
		}
		if !field.MapIndex(kv).IsValid() {
			return false
		}
	}
	return true
}
