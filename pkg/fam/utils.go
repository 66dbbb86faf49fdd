package fam

import (
	"context"
	"errors"
	"reflect"
)

var ErrCancelled = errors.New("operation cancelled")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, ErrCancelled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// FromOk mirrors the comma-ok idiom: ok=false gives Absent.
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(v)
}

// FromPtr treats a nil pointer as Absent and dereferences otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromError drops the error: any non-nil err gives Absent.
func FromError[T any](v T, err error) Optional[T] {
	if err != nil {
		return Absent[T]()
	}
	return Present(v)
}

// ToPtr returns nil when o is absent and a pointer to a copy otherwise.
func ToPtr[T any](o Optional[T]) *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}
