// Copyright 2026 widevec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wide

import "errors"

var (
	// ErrInvalidShape reports a chain shape that cannot exist: fewer than
	// one link, or operands whose link/lane counts do not match.
	ErrInvalidShape = errors.New("invalid chain shape")

	// ErrOutOfBounds reports a source or destination buffer shorter than
	// the chain's logical element count.
	ErrOutOfBounds = errors.New("buffer out of bounds")
)
