package query

// Paginate returns the contiguous subsequence of list starting at offset
// with at most limit elements. The result is empty when offset is at or
// past the end. Pure; the input slice is never modified.
func Paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
