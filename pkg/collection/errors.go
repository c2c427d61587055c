package collection

import "errors"

// ErrNotAShape is returned by Add when the value does not implement shape.Shape.
var ErrNotAShape = errors.New("value is not a shape")

// ErrEmptyCollection is returned by the aggregate scans when there is nothing to scan.
var ErrEmptyCollection = errors.New("collection is empty")
