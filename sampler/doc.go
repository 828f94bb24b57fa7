/*
Package sampler draws random batches from the collection.

Sample is a pure function over (catalog, used set, count): it filters out
previously presented numbers and draws count distinct polishes uniformly at
random without replacement, using math/rand/v2's process-seeded source.
If fewer than count polishes remain, all of them are returned.
*/
package sampler
