package searcher

import (
	"math"
	"reflect"
)

// MaxScore returns the largest finite value of S, meaning You certainly won.
func MaxScore[S Score]() S {
	var s S
	v := reflect.ValueOf(&s).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MaxInt64 >> (64 - 8*v.Type().Size()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(math.MaxUint64 >> (64 - 8*v.Type().Size()))
	case reflect.Float32:
		v.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		v.SetFloat(math.MaxFloat64)
	}
	return s
}

// MinScore returns the smallest finite value of S, meaning You certainly lost.
// For floats this is the most negative finite value.
func MinScore[S Score]() S {
	var s S
	v := reflect.ValueOf(&s).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := 8 * v.Type().Size()
		v.SetInt(math.MinInt64 >> (64 - bits))
	case reflect.Float32:
		v.SetFloat(-math.MaxFloat32)
	case reflect.Float64:
		v.SetFloat(-math.MaxFloat64)
	}
	// Unsigned kinds keep their zero value
	return s
}
