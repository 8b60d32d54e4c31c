// Package pipeline provides lazy, pull-based stream combinators.
//
// A Pipeline describes a sequence of values; nothing runs until a terminal
// (Drain, Collect) or Iter pulls from it. Map transforms values in order.
// Buffered is the scheduling primitive of pconcat: it admits up to n values
// ahead of the consumer, starting each one's work as it is admitted, while
// yielding results strictly in input order.
package pipeline
