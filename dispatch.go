// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamly

// ErrorContext holds the state needed for Error effect dispatch.
type ErrorContext[E any] struct {
	Err    E
	HasErr bool
}
