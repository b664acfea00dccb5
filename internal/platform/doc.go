// Package platform provides filesystem primitives whose behavior around
// symlinks needs to be pinned down explicitly. Touch creates a file through
// a dangling symlink instead of failing on it, as shell touch does.
package platform
