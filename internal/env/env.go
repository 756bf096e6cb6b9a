package env

import (
	"errors"
	"fmt"
)

var ErrNotSet = errors.New("environment variable not set")

// Get looks up key and treats an empty value as absent.
func Get(key string, lookup func(key string) (val string)) (string, error) {
	v := lookup(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrNotSet, key)
	}

	return v, nil
}
