//go:build amd64 || arm64 || loong64 || ppc64 || ppc64le || riscv64 || s390x

package mmap

// MaxSize is the largest file Open will map on this architecture.
const MaxSize = 0xFFFFFFFFFFFF // 256TB
