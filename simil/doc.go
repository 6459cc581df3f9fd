// Batch entry points fan out across goroutines with a dynamic,
// chunk-size-one schedule (runBatch): each worker repeatedly claims
// the next unit of work from a shared cursor instead of a fixed
// upfront split, so fast and slow pairs in the same batch don't leave
// idle workers. The pooled resource borrowed and returned per unit of
// work is the allocator-drawn scratch inside each
// Levenshtein/NeedlemanWunsch/SmithWaterman call rather than a struct,
// since the DP core needs nothing stateful beyond its three rolling
// arrays.
package simil
