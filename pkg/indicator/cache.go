package indicator

// Cache memoizes one derived result of an indicator.
// The zero value is empty. Reset empties it so the next Get misses.
type Cache[T any] struct {
	value T
	ok    bool
}

func (c *Cache[T]) Get() (T, bool) {
	return c.value, c.ok
}

func (c *Cache[T]) Set(v T) T {
	c.value = v
	c.ok = true
	return v
}

func (c *Cache[T]) Reset() {
	var zero T
	c.value = zero
	c.ok = false
}

func (c *Cache[T]) Valid() bool {
	return c.ok
}

// Memo returns the cached value, computing and storing it on a miss.
// Nothing is stored when compute fails.
func Memo[T any](c *Cache[T], compute func() (T, error)) (T, error) {
	if v, ok := c.Get(); ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	return c.Set(v), nil
}
