package interpreter

import (
	"time"

	"github.com/jacksoncooper/rlox/lang/values"
)

// clockNative returns the "clock" builtin: arity 0, returns seconds since
// the Unix epoch as a Number.
func clockNative() *values.NativeFunction {
	return &values.NativeFunction{
		Name: "clock",
		Arit: 0,
		Fn: func(args []values.Value) (values.Value, error) {
			return values.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
