package types

import (
	"fmt"
	"strings"
)

// DictionaryItem is a single libav option (e.g. "video_size" = "1280x720").
type DictionaryItem struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type DictionaryItems []DictionaryItem

// ParseDictionaryItems parses "key=value" pairs.
func ParseDictionaryItems(pairs []string) (DictionaryItems, error) {
	result := make(DictionaryItems, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option '%s', expected 'key=value'", pair)
		}
		result = append(result, DictionaryItem{Key: key, Value: value})
	}
	return result, nil
}

// Deduplicate keeps only the last value of each key, ordered by
// the position of that last occurrence.
func (s DictionaryItems) Deduplicate() DictionaryItems {
	last := make(map[string]int, len(s))
	for idx, item := range s {
		last[item.Key] = idx
	}
	result := make(DictionaryItems, 0, len(last))
	for idx, item := range s {
		if last[item.Key] == idx {
			result = append(result, item)
		}
	}
	return result
}

// Get returns the last value set for key.
func (s DictionaryItems) Get(key string) (string, bool) {
	for idx := len(s) - 1; idx >= 0; idx-- {
		if s[idx].Key == key {
			return s[idx].Value, true
		}
	}
	return "", false
}
