package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const QueryIDKey ctxKey = "query_id"

// WithQueryID tags ctx so timings and warnings can be tied back to an input line.
func WithQueryID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, QueryIDKey, id)
}

// QueryID returns the id attached by WithQueryID, or 0.
func QueryID(ctx context.Context) int {
	id, _ := ctx.Value(QueryIDKey).(int)
	return id
}

func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	queryID := QueryID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("query_id=%d op=%s dur=%dms err=%v", queryID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("query_id=%d op=%s dur=%dms", queryID, name, dur.Milliseconds())
	}
}
