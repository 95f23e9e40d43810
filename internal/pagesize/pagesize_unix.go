//go:build linux || darwin || freebsd || netbsd || openbsd

package pagesize

import "golang.org/x/sys/unix"

func sysPageSize() int {
	return unix.Getpagesize()
}
