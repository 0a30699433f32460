// Copyright 2025 go-highway Authors
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

// Package cpu is the CPU compute backend of a small tensor library.
//
// It materializes a single operator node eagerly on the host, using a
// fixed pool of worker threads for intra-op parallelism. The package
// owns the barrier-synchronized worker pool, the dynamic worker-count
// heuristic, the kernel registry, and the ISA-driven specialization
// selector that populates it at device init.
//
// The tensor data structure, the numerical bodies of individual
// kernels, and the library-wide context (feature detection, allocator)
// are external collaborators, referenced here only by interface — see
// Node, Context and Allocator.
package cpu
