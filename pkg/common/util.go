package common

import (
	"os"
	"testing"
)

func IsTestEnv() bool {
	return testing.Testing()
}

func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := 0; i < len(items); i++ {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

// Ptr is handy for optional fields modeled as pointers (device values,
// partial updates).
func Ptr[T any](v T) *T {
	return &v
}
