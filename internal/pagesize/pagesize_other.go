//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package pagesize

func sysPageSize() int {
	return Default
}
