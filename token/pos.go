// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

// Location is a source position resolved from a token's start offset, only
// ever computed on demand for diagnostics (§3.2). Line and Column are
// 0-indexed; callers that render a 1-indexed diagnostic add one themselves
// (§4.2).
type Location struct {
	Line            int
	Column          int
	LineStartOffset int
	LineEndOffset   int
}

// Locate resolves the Location of offset within src. Lines are delimited by '\n'.
func Locate(src []byte, offset int) Location {
	if offset < 0 {
		offset = 0
	}

	if offset > len(src) {
		offset = len(src)
	}

	line := 0
	lineStart := 0

	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	lineEnd := len(src)
	for i := lineStart; i < len(src); i++ {
		if src[i] == '\n' {
			lineEnd = i
			break
		}
	}

	return Location{
		Line:            line,
		Column:          offset - lineStart,
		LineStartOffset: lineStart,
		LineEndOffset:   lineEnd,
	}
}

// LocateToken resolves the Location of tok's start offset within src.
func LocateToken(src []byte, tok Token) Location {
	return Locate(src, tok.Start)
}

// Line returns the raw source text of the line containing loc, without the
// trailing newline.
func Line(src []byte, loc Location) string {
	return string(src[loc.LineStartOffset:loc.LineEndOffset])
}
