package ports

// SubnetSource streams raw input lines from a source (e.g., filesystem).
// Lines are delivered in file order, without the trailing newline.
// A non-nil error from fn stops the iteration and is returned as-is.
type SubnetSource interface {
	Each(path string, fn func(line string) error) error
}
