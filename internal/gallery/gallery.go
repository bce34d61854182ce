// Package gallery manipulates a project's ordered list of image URLs.
// The array position is the only ordering signal; every operation is a
// plain splice over a copy of the input.
package gallery

import "errors"

var ErrIndexOutOfRange = errors.New("gallery index out of range")

// Move takes the item at position from and reinserts it at position to,
// shifting the items in between by one. Both indexes address the
// original list.
func Move(items []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, ErrIndexOutOfRange
	}

	result := make([]string, 0, len(items))
	result = append(result, items[:from]...)
	result = append(result, items[from+1:]...)

	moved := items[from]
	result = append(result[:to], append([]string{moved}, result[to:]...)...)
	return result, nil
}

// Append adds URLs to the end of the list, skipping any URL already
// present. Comparison is exact string equality.
func Append(items []string, urls ...string) []string {
	seen := make(map[string]struct{}, len(items)+len(urls))
	result := make([]string, 0, len(items)+len(urls))
	for _, u := range items {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		result = append(result, u)
	}
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		result = append(result, u)
	}
	return result
}

// RemoveAt deletes the item at index. Removal is by position, not by
// content; the remaining items keep their relative order.
func RemoveAt(items []string, index int) ([]string, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}

	result := make([]string, 0, len(items)-1)
	result = append(result, items[:index]...)
	result = append(result, items[index+1:]...)
	return result, nil
}
