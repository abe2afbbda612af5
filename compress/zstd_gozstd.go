//go:build gozstd

package compress

import "github.com/valyala/gozstd"

// zstdCompress appends one zstd frame for src to dst through libzstd.
func zstdCompress(dst, src []byte) []byte {
	return gozstd.Compress(dst, src)
}
