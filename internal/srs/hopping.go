package srs

// HoppingState holds the group/sequence hopping values derived for one
// slot. It is a plain value with no identity beyond its fields.
type HoppingState struct {
	// GroupNumber is the sequence-group index u in [0, 30).
	GroupNumber int
	// SequenceNumber is the base-sequence index actually used as the
	// Zadoff-Chu root, in [0, 30).
	SequenceNumber int
	// FGH is the pseudo-random group hopping offset.
	FGH int
	// FSS is the cell-specific shift offset.
	FSS int
}

// GroupAndSequenceHopping derives the group and sequence numbers for a
// slot following TS 36.211 section 5.5.3: a cell-specific offset
// f_ss = cellID mod 30 combined with a pseudo-random per-slot offset f_gh
// drawn from the Gold sequence when group hopping is enabled. The result
// is deterministic for fixed (cfg, slotIndex).
func GroupAndSequenceHopping(cfg *Config, slotIndex int) (HoppingState, error) {
	if slotIndex < 0 {
		return HoppingState{}, ErrSlotIndex
	}

	fss := cfg.CellID() % 30

	fgh := 0
	if cfg.GroupHoppingEnabled() {
		cellID := int64(cfg.CellID())
		cInit := ((int64(slotIndex)/2+1)*(cellID+1)*512 + cellID) % (1 << 31)
		c, err := GeneratePRS(uint32(cInit), 8*(slotIndex+1))
		if err != nil {
			return HoppingState{}, err
		}
		start := 8 * slotIndex
		for i := 0; i < 8; i++ {
			fgh += int(c[start+i]) << i
		}
		fgh %= 30
	}

	group := (fss + fgh) % 30

	// Sequence hopping toggles the base-sequence index per slot; with it
	// disabled the group number is used directly.
	seq := group
	if cfg.SequenceHoppingEnabled() {
		seq = (group + fgh%30) % 30
	}

	return HoppingState{GroupNumber: group, SequenceNumber: seq, FGH: fgh, FSS: fss}, nil
}
