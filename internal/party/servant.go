package party

import (
	"math/rand/v2"

	"github.com/metailurini/lfset/internal/partylog"
)

type servant struct {
	id     int
	rng    *rand.Rand
	logger partylog.Logger
}

func newServant(id int, seed uint64, logger partylog.Logger) *servant {
	return &servant{
		id:     id,
		rng:    rand.New(rand.NewPCG(seed, uint64(id))),
		logger: logger.WithComponent("party.servant").With("servant", id),
	}
}

// serve alternates between adding a present and thanking one until both
// indices run past the bag. Once adding is exhausted the servant only thanks.
func (p *party) serve(s *servant) {
	shouldAdd := true
	doneAdding := false

	for {
		p.maybeSpotCheck(s)

		if shouldAdd && !doneAdding {
			idx := p.addIndex.Add(1) - 1
			if idx >= int64(len(p.bag)) {
				doneAdding = true
				continue
			}

			if p.chain.Add(p.bag[idx]) {
				p.added.Add(1)
			}
			shouldAdd = false
			continue
		}

		idx := p.thankIndex.Add(1) - 1
		if idx >= int64(len(p.bag)) {
			s.logger.Debug("Servant finished")
			return
		}

		present := p.bag[idx]
		// The present was claimed by some servant's add, which cannot block,
		// so this spin always ends.
		for !p.chain.Contains(present) {
		}

		if p.chain.Remove(present) {
			p.thanked.Add(1)
		} else {
			s.logger.Error("Present disappeared before its note was written", "present", present)
		}
		shouldAdd = true
	}
}

func (p *party) maybeSpotCheck(s *servant) {
	if p.cfg.SpotCheckPercent == 0 || len(p.bag) == 0 {
		return
	}
	if s.rng.IntN(100) >= p.cfg.SpotCheckPercent {
		return
	}

	present := s.rng.IntN(len(p.bag))
	found := p.chain.Contains(present)

	p.spotChecks.Add(1)
	if found {
		p.spotHits.Add(1)
	}

	log := s.logger.Debug
	if p.cfg.Verbose {
		log = s.logger.Info
	}
	log("The Minotaur asked about a present", "present", present, "found", found)
}
