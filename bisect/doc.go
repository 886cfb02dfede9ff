/*
Package bisect finds boundaries of monotone comparators by binary search.

All searches take a comparator function in the sign convention of cmp.Compare:
a negative result means "less" (the boundary lies further right), zero means
"equal" and a positive result means "greater". Over the searched domain the
comparator has to be monotone: a run of less, followed by a run of equal,
followed by a run of greater, any of which may be empty. Results for
non-monotone comparators are unspecified.

FindRangeBy returns the half-open range of positions comparing equal. If there
is none, the range is empty and starts at the insertion point. Lower and upper
bounds are the start and end of this range, and a partition point is the lower
bound of a boolean predicate mapped to less (true) and greater (false).

Searches are provided for slices, for random-access sequences, for anything
implementing Searcher (e.g., a Fenwick tree's prefix aggregates) and for
integer intervals of any integer type, which are searched without
materializing a container.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bisect
