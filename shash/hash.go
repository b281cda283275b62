package shash

// Hash is djb2 over the bytes of key: starting from 5381, each byte is folded
// in as h*33 + b, wrapping on overflow.
//
// See http://www.cse.yorku.ca/~oz/hash.html.
func Hash(key []byte) uint64 {
	var h = uint64(5381)
	for _, b := range key {
		h = (h << 5) + h + uint64(b)
	}
	return h
}

// HashString is Hash over the bytes of a string, without copying it.
func HashString(key string) uint64 {
	var h = uint64(5381)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}
	return h
}

// KeyIndex returns the bucket for key in a table of size buckets. There are no
// buckets when size is 0, and KeyIndex returns 0.
func KeyIndex(key []byte, size uint64) uint64 {
	if size == 0 {
		return 0
	}
	return Hash(key) % size
}
