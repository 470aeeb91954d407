// Package libdiff computes and applies structural differences between bms
// trees.
//
// A diff is itself a bms tree. Changes to a single node are
//
//	(insert X)
//	(delete X)
//	(replace (from X) (to Y))
//
// Changes within a list are gathered in a listdiff, one entry per changed
// child, indexed by position in the original list:
//
//	(listdiff
//	 (at 0 (delete "a"))
//	 (at 2 (replace (from b) (to c)))
//	)
//
// Changes within a string are a strdiff of equal, insert and delete runs.
package libdiff
