package stream

import (
	"context"
	"github.com/shpandrak/smalliter"
	"github.com/shpandrak/smalliter/internal/util"
)

// Map maps the source stream to a target stream using the provided mapper
// function.
func Map[SRC any, TGT any](src Stream[SRC], mapper smalliter.Mapper[SRC, TGT]) Stream[TGT] {
	return newStream(func(ctx context.Context) (TGT, error) {
		v, err := src.provider(ctx)
		if err != nil {
			return util.DefaultValue[TGT](), err
		}
		return mapper(v), nil
	}, src.lifecycles)
}
