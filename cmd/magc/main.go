// Command magc drives the CPU compute backend from the command line:
// it allocates a pair of random matrices, runs a device-parallel
// matmul, and reports timing and a checksum of the result.
//
// Usage:
//
//	magc -threads 8 -size 512
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ajroetker/go-magnetron/cpu"
	"github.com/ajroetker/go-magnetron/host"
	"github.com/ajroetker/go-magnetron/internal/vecmath"
	"github.com/ajroetker/go-magnetron/kernels"
	"github.com/ajroetker/go-magnetron/tensor"
)

var (
	threads = flag.Int("threads", 0, "allocated worker count (default: GOMAXPROCS)")
	size    = flag.Int("size", 512, "square matrix dimension")
	seed    = flag.Uint64("seed", 1, "random fill seed")
)

func main() {
	flag.Parse()

	if *size <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -size must be positive")
		os.Exit(1)
	}

	ctx := host.NewContext()
	dev := cpu.InitDeviceCPU(ctx, kernels.Source{}, cpu.Descriptor{NumWorkers: *threads})
	defer cpu.DestroyDeviceCPU(dev)

	fmt.Println(dev.Name())

	a := tensor.NewFillRandom(*size, *size, *seed)
	b := tensor.NewFillRandom(*size, *size, *seed+1)
	dev.ExecFwd(a)
	dev.ExecFwd(b)

	start := time.Now()
	product := tensor.NewMatMul(a, b)
	dev.ExecFwd(product)
	elapsed := time.Since(start)

	sum := vecmath.SumF32(product.Data())
	fmt.Printf("matmul %dx%d in %s, checksum=%v\n", *size, *size, elapsed, sum)
}
