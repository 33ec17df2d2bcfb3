package async

// GatherN collects the results of cs in argument order.
func GatherN[R any](cs ...<-chan R) <-chan []R {
	return Promise(func() []R {
		results := make([]R, len(cs))
		for i, f := range cs {
			results[i] = <-f
		}
		return results
	})
}

// Map applies f to every item with at most limit calls in flight. Results
// keep the order of items. A limit below 1 means one goroutine per item.
func Map[T, R any](items []T, limit int, f func(T) R) <-chan []R {
	if limit < 1 {
		limit = len(items)
	}
	sem := make(chan struct{}, max(limit, 1))
	promises := make([]<-chan R, len(items))
	for i, item := range items {
		promises[i] = Promise(func() R {
			sem <- struct{}{}
			defer func() { <-sem }()
			return f(item)
		})
	}
	return GatherN(promises...)
}
