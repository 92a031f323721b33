package worker

// Ordered reads results until the channel is closed and passes them to emit
// in Index order, holding back results that finish early. It stops at the
// first error returned by emit; the caller must still drain results.
func Ordered(results <-chan ProcessResult, emit func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := 0

	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := emit(ready); err != nil {
				return err
			}
		}
	}
	return nil
}
