package market

// BatchSize is the per-request item limit of the aggregated market endpoint.
const BatchSize = 50

// Batches partitions ids into consecutive chunks of at most size, preserving
// order. Every id appears in exactly one batch.
func Batches(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}
