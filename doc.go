// Package itertools provides lazy adaptors over range-over-func
// iterators: merging sorted sequences, grouping runs of items, zipping,
// interleaving and deduplicating, small reductions, and the
// combinatorial generators of the comb package in sequence form.
//
// Adaptors take iter.Seq or iter.Seq2 values and return new ones;
// nothing is read from an input until the returned sequence is
// iterated, and iteration stops reading as soon as the consumer
// breaks out of its loop. Inputs that are read with more than one
// cursor are converted with iter.Pull and released when iteration
// ends.
//
// Arguments that cannot produce a meaningful sequence, such as a
// negative length or a zero step, cause a panic with an error that
// wraps ers.ErrInvalidArgument. Queries that can legitimately fail,
// such as ExactlyOne, return errors instead.
//
// Nothing in this package is safe for concurrent use.
package itertools
