// Package kernels supplies the numerical bodies the cpu package's
// registry dispatches to: matrix multiplication, elementwise addition,
// and random-normal fill. It implements cpu.KernelSource, so
// cpu.InitDeviceCPU can select an ISA specialization and populate a
// fresh cpu.Registry without ever importing this package's types.
//
// Every kernel here is static-partitioned by thread index (see
// splitRange) rather than work-stolen: with a fixed worker count known
// up front and row/element ranges that divide evenly enough in
// practice, a shared atomic cursor would add contention the workload
// never needed.
package kernels
