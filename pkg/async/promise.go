// Package async runs checksum work on goroutines and collects the results
// through receive-only channels.
package async

// Promise runs f on its own goroutine and delivers the single result.
func Promise[R any](f func() R) <-chan R {
	out := make(chan R, 1)
	go func() {
		out <- f()
	}()
	return out
}

func Await[R any](a <-chan R) R {
	return <-a
}
