package ports

// HostSink consumes expanded host addresses one at a time. Implementations
// are expected to buffer; Close flushes and releases the destination.
type HostSink interface {
	WriteHost(addr string) error
	Close() error
}

// SinkFactory opens a sink for a destination path. When overwrite is
// false and the destination already exists, Create must fail instead of
// clobbering it.
type SinkFactory interface {
	Create(path string, overwrite bool) (HostSink, error)
}
