package random

import (
	"math/rand"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

const numbers = "0123456789"

// GetRandomNumberString returns a random string of digits with the given length.
func GetRandomNumberString(length int) string {
	key := make([]byte, length)
	for i := 0; i < length; i++ {
		key[i] = numbers[rng.Intn(len(numbers))]
	}
	return string(key)
}
