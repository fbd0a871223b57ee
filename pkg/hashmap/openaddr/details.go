package openaddr

/*
	This package implements a closed-hashing (open addressing) table using
	linear probing to resolve collisions. The displacement discipline is
	'robin hood hashing': on collision, the entry with the smaller probe
	sequence length (PSL, the distance from its home slot) yields its slot
	to the entry with the larger PSL, and the yielding entry continues
	probing forward carrying its own incremented PSL. More on the technique
	can be found in the links below:
	01) https://andre.arko.net/2017/08/24/robin-hood-hashing/
	02) https://cs.uwaterloo.ca/research/tr/1986/CS-86-14.pdf
	03) https://www.dmtcs.org/pdfpapers/dmAD0127.pdf
	04) https://www.pvk.ca/Blog/numerical_experiments_in_hashing.html
	05) https://www.pvk.ca/Blog/more_numerical_experiments_in_hashing.html
	06) https://www.sebastiansylvan.com/post/robin-hood-hashing-should-be-your-default-hash-table-implementation/
	07) https://www.sebastiansylvan.com/post/more-on-robin-hood-hashing-2/
	08) http://codecapsule.com/2013/11/11/robin-hood-hashing/
	09) https://www.pvk.ca/Blog/2013/11/26/the-other-robin-hood-hashing/
	10) http://codecapsule.com/2013/11/17/robin-hood-hashing-backward-shift-deletion/

	On top of plain robin hood hashing this table adds a hard per-lookup
	probe budget (probeLimit, derived from capacity) and makes resizing the
	sole escape valve for clustering: once a probe walk would exceed the
	budget, the table doubles instead of extending the walk. Home slots are
	derived by Fibonacci (multiplicative) hashing rather than a bitmask, and
	the backing array carries probeLimit extra tail slots so a probe walk
	never has to wrap back around to index zero.

	The basic principle, per insert:
	-----------------------
	1) Calculate the hash value and home slot of the entry to be inserted.
	2) Search the position in the array linearly, carrying a PSL counter.
	3) If an empty slot is found, place the entry there.
	4) If an occupied slot holds the same key, the insert is rejected and
	   the existing entry is left untouched.
	5) If an occupied slot has a smaller PSL than the candidate's, swap them
	   and keep probing with the displaced entry.
	6) If the candidate's PSL reaches probeLimit, abort the walk and resize.
*/
