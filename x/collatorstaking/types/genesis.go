package types

// GenesisCandidate seeds one candidate at genesis with its own bond and
// initial delegations, so a chain can launch with a pre-populated
// candidate pool rather than waiting for the first join_candidates calls.
type GenesisCandidate struct {
	Candidate   AccountId          `json:"candidate"`
	Bond        Balance            `json:"bond"`
	Delegations []Bond             `json:"delegations"`
}

// GenesisState carries the module's params, round, inflation, parachain
// bond, selection and commission settings, the invulnerables, and each
// candidate's own bond and delegations. It does not carry candidate status
// or pending candidate requests, delegators' scheduled requests,
// auto-compound settings, points, exposure snapshots, staked totals,
// delayed payouts, or the selected set; InitGenesis rebuilds each
// candidate from its bond and delegations only.
type GenesisState struct {
	Params              Params              `json:"params"`
	RoundInfo           RoundInfo           `json:"round_info"`
	InflationConfig     InflationConfig     `json:"inflation_config"`
	ParachainBondConfig ParachainBondConfig `json:"parachain_bond_config"`
	TotalSelected       uint32              `json:"total_selected"`
	CollatorCommission  Perbill             `json:"collator_commission"`
	Invulnerables       []AccountId         `json:"invulnerables"`
	Candidates          []GenesisCandidate  `json:"candidates"`
}

// DefaultGenesisState returns a genesis state with conservative defaults
// and no candidates: a chain embedding this module still needs governance
// (or a genesis candidate list) to bootstrap a functioning collator set.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		RoundInfo:     RoundInfo{Current: 1, First: 0, Length: 100},
		TotalSelected: MinSelectedCandidates,
	}
}

// Validate checks internal consistency of the genesis state. It does not
// check cross-references against live host-chain state (e.g. that every
// candidate address is a valid bech32 account); that is the embedding
// application's responsibility at InitGenesis time.
func (g *GenesisState) Validate() error {
	if err := g.Params.ValidateBasic(); err != nil {
		return err
	}
	if err := ValidateBlocksPerRound(g.RoundInfo.Length); err != nil {
		return err
	}
	if err := ValidateTotalSelected(g.TotalSelected, g.RoundInfo.Length); err != nil {
		return err
	}
	if err := ValidateInvulnerables(g.Invulnerables); err != nil {
		return err
	}

	seen := make(map[AccountId]bool, len(g.Candidates))
	for _, c := range g.Candidates {
		if seen[c.Candidate] {
			return ErrCandidateExists.Wrapf("duplicate genesis candidate %s", c.Candidate)
		}
		seen[c.Candidate] = true
		if c.Bond.IsNil() || c.Bond.IsNegative() || c.Bond.LT(g.Params.MinCandidateStake) {
			return ErrCandidateBondBelowMin.Wrapf("candidate %s", c.Candidate)
		}
	}
	return nil
}
