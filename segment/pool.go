package segment

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Segmenters are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type segmenterPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalSegmenterPool *segmenterPool

func init() {
	globalSegmenterPool = &segmenterPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return NewSegmenter(), nil
		})
	globalSegmenterPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalSegmenterPool.opool = pool.NewObjectPool(globalSegmenterPool.ctx, factory, config)
}

// borrowSegmenter returns a Segmenter from the pool. Clients have to call
// Init(...) before using it.
func borrowSegmenter() *Segmenter {
	o, err := globalSegmenterPool.opool.BorrowObject(globalSegmenterPool.ctx)
	if err != nil {
		CT().Errorf("segmenter pool: %v", err)
		return NewSegmenter()
	}
	return o.(*Segmenter)
}

// Clears the Segmenter and puts it back into the pool.
func (s *Segmenter) release() {
	s.reader = nil
	s.activeSegment = nil
	s.err = nil
	_ = globalSegmenterPool.opool.ReturnObject(globalSegmenterPool.ctx, s)
}
