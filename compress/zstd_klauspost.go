//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPool pools warmed-up encoders; EncodeAll is stateless, so a
// pooled encoder is safe to reuse across strips.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			// These options are always valid.
			panic(fmt.Sprintf("create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// zstdCompress appends one zstd frame for src to dst.
func zstdCompress(dst, src []byte) []byte {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, dst)
}
