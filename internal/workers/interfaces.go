// Package workers provides the bounded execution lanes that RSA operations
// run on.
//
// Key generation is far more expensive than encryption or decryption, so the
// two kinds of work get separate lanes: a burst of generate requests can
// saturate its own lane without delaying encrypt, decrypt or avalanche calls.
package workers

import "context"

// Lane runs CPU-bound work with bounded concurrency.
//
// Do waits for a free slot, honouring ctx while waiting, then runs fn to
// completion. Once fn has started it is not interrupted: RSA primitives cannot
// be cancelled midway.
//
// Example:
//
//	err := lane.Do(ctx, func() error {
//	    kp, err = generator.Generate(size)
//	    return err
//	})
type Lane interface {
	Do(ctx context.Context, fn func() error) error
	Size() int
	Name() string
}
