// Package pagesize discovers the host's advisory memory page size, the
// same value the original C++ parser cached in a process-wide
// `MEM_PAGE_SIZE` static via `sysconf(PAGESIZE)`. Spec §9 ("Global
// state") asks for this to move into per-parser configuration instead
// of a package-level global, so Get is a plain function a caller invokes
// once when building a Config rather than an init-time singleton.
package pagesize

// Default is used whenever the host doesn't expose a page size (or
// reports something that isn't a multiple of 8, which the original
// treated as bogus).
const Default = 4096

// Get returns the host's page size, or Default if it can't be
// determined.
func Get() int {
	sz := sysPageSize()
	if sz <= 0 || (sz/8)*8 != sz {
		return Default
	}
	return sz
}
