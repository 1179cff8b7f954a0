package download

// Result is the finished conversion handed back to the caller. It is
// the only pipeline output that outlives an invocation.
type Result struct {
	Data     []byte
	FileName string
}
