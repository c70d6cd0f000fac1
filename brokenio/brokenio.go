// Package brokenio wraps an io.ReadCloser so that reads go wrong.
// We use it to pretend that a download was cut off, or that a server
// sent us an empty file.
//
// Typical use: you have a response body, you write
//
//	body = brokenio.NewReader(body)
//	body.SetFailAfter(100)
//
// and everything works until 100 bytes have gone through.
// Random failures are also available, but tests usually want to know
// exactly where things break.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is wrapped by every error we make up.
var ErrBroken = errors.New("brokenio: simulated read failure")

// Reader counts what goes through it and breaks when told to.
// Probabilities are from 0 to 1, so 0.05 means failure in 5% of reads.
type Reader struct {
	orig         io.ReadCloser
	failAfter    int // fail once this many bytes have been read, -1 for never
	probZeroFile float32
	probFail     float32
	fracFail     float32
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader wraps rIn. Until one of the Set methods is called it
// behaves exactly like rIn.
func NewReader(rIn io.ReadCloser) *Reader {
	return &Reader{orig: rIn, failAfter: -1, fracFail: 0.5}
}

// SetVerbose says whether to print the amount of data on Close.
func (r *Reader) SetVerbose(v bool) { r.verbose = v }

// SetFailAfter makes reads fail once n bytes have been delivered.
// A negative n turns this off.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// SetFracFail sets how much of a buffer is wiped on a random failure.
func (r *Reader) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the chance that the first read returns nothing
// and io.EOF, like an empty file. We do not check the argument.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the chance of any one read going wrong.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// NByte is the number of good bytes delivered so far.
func (r *Reader) NByte() int { return r.nByte }

// wipeTail zeroes the last frac of p and says how much is left.
func wipeTail(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("%w: wiped last %d of %d bytes", ErrBroken, len(p)-nkeep, len(p))
}

// Read passes through to the wrapped reader, breaking as configured.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && rand.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("%w: after %d bytes", ErrBroken, r.nByte)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.orig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && rand.Float32() < r.probFail {
		m, werr := wipeTail(p[:n], r.fracFail)
		r.nByte -= n - m
		return m, werr
	}
	return n, err
}

// Close closes the wrapped reader.
func (r *Reader) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.orig.Close()
}
