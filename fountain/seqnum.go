package fountain

// SeqNumFor searches for the smallest sequence number that would
// produce fragments as its index set, given seqLen and checksum. It is
// a test and tooling aid (SPEC_FULL.md's supplemented-features list),
// grounded on the seedhammer fountain reference's SeqNumFor, which
// exists purely to let tests construct a part with a chosen index set.
func SeqNumFor(seqLen int, checksum uint32, fragments Set) int {
	want := newSet(fragments)
	cache := newAliasCache()
	for seqNum := uint32(1); ; seqNum++ {
		got := chooseFragments(seqNum, seqLen, checksum, cache)
		if got.equal(want) {
			return int(seqNum)
		}
	}
}
