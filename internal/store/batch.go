package store

import "fmt"

// Batch size ceilings, chosen to stay under the database's request payload
// limit. Narrow rows (participants, milestone achievements) fit more per
// request.
const (
	DefaultBatchSize = 50
	WideBatchSize    = 100
)

// InBatches partitions records into chunks of at most size and passes each
// chunk to write in order. The first failing chunk aborts the sequence;
// chunks already written stay written. A nil or empty records slice results
// in zero write calls.
func InBatches[T any](records []T, size int, write func(chunk []T) error) error {
	if size <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", size)
	}
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		if err := write(records[start:end]); err != nil {
			return fmt.Errorf("writing batch %d-%d of %d: %w", start, end, len(records), err)
		}
	}
	return nil
}
