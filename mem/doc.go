// Package mem provides bounds-checked views over byte buffers and a
// fixed-size container of copiable elements.
//
// ReadOnlyByteArray and ByteArray are zero-copy: they never allocate and
// every access is translated to the backing slice with the view's offset.
// All accesses are checked against the view's length and report
// ErrIndexOutOfRange instead of panicking.
package mem
