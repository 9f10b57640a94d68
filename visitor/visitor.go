package visitor

// Visitor iterates over container (key, element) pairs.
// Iteration stops when callback returns false or an error, the error is returned by the visitor.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Each visits every pair, stopping at the first callback error
func (v Visitor[K, E]) Each(fn func(key K, element E) error) error {
	return v(func(key K, element E) (bool, error) {
		if err := fn(key, element); err != nil {
			return false, err
		}
		return true, nil
	})
}
