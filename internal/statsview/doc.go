// This file is part of intcode - https://github.com/eliminmax/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

// Package statsview serves live runtime statistics (heap, goroutines, GC
// pauses) of the running process over HTTP, for profiling long running
// programs.
//
// The server is only compiled in with the statsview build tag. Without it,
// Launch always fails, so that default builds do not carry an HTTP server:
//
//	go build -tags statsview ./cmd/intcode
//	intcode -statsview localhost:12600 prog.ic
//
// Charts are then served under Path on the given address.
package statsview

// Path is the URL path of the statistics page.
const Path = "/debug/statsview"

// URL returns the address of the statistics page served on addr.
func URL(addr string) string {
	return "http://" + addr + Path
}
