package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Error codes. Code 1 is reserved by cosmossdk.io/errors for ErrInternal-alikes
// registered against the root codespace; module error codes must start from 2.
var (
	// existence errors
	ErrCandidateDNE       = sdkerrors.Register(ModuleName, 2, "candidate does not exist")
	ErrDelegatorDNE       = sdkerrors.Register(ModuleName, 3, "delegator does not exist")
	ErrDelegationDNE      = sdkerrors.Register(ModuleName, 4, "delegation does not exist")
	ErrPendingRequestDNE  = sdkerrors.Register(ModuleName, 5, "pending request does not exist")

	// uniqueness errors
	ErrCandidateExists              = sdkerrors.Register(ModuleName, 6, "candidate already exists")
	ErrDelegatorExists               = sdkerrors.Register(ModuleName, 7, "delegator already exists")
	ErrAlreadyDelegatedCandidate     = sdkerrors.Register(ModuleName, 8, "already delegated this candidate")
	ErrPendingRequestAlreadyExists   = sdkerrors.Register(ModuleName, 9, "pending request already exists")

	// bounds errors
	ErrCandidateBondBelowMin            = sdkerrors.Register(ModuleName, 10, "candidate bond below minimum")
	ErrDelegationBelowMin                = sdkerrors.Register(ModuleName, 11, "delegation below minimum")
	ErrDelegatorBondBelowMin             = sdkerrors.Register(ModuleName, 12, "delegator total stake below minimum")
	ErrInsufficientBalance               = sdkerrors.Register(ModuleName, 13, "insufficient balance")
	ErrExceedMaxDelegationsPerDelegator   = sdkerrors.Register(ModuleName, 14, "exceeds max delegations per delegator")

	// state errors
	ErrAlreadyOffline              = sdkerrors.Register(ModuleName, 15, "candidate already offline")
	ErrAlreadyActive               = sdkerrors.Register(ModuleName, 16, "candidate already active")
	ErrCannotGoOnlineIfLeaving     = sdkerrors.Register(ModuleName, 17, "cannot go online while leaving")
	ErrCannotDelegateIfLeaving     = sdkerrors.Register(ModuleName, 18, "cannot delegate a candidate that is leaving")
	ErrCandidateNotLeaving         = sdkerrors.Register(ModuleName, 19, "candidate is not leaving")
	ErrCandidateCannotLeaveYet     = sdkerrors.Register(ModuleName, 20, "candidate cannot leave yet")
	ErrPendingDelegationRevoke     = sdkerrors.Register(ModuleName, 21, "delegation has a pending revoke request")

	// capacity errors
	ErrCannotDelegateLessThanOrEqualToLowestBottomWhenFull = sdkerrors.Register(
		ModuleName, 22, "cannot delegate an amount at or below the lowest bottom delegation when bottom is full",
	)

	// schedule / governance errors
	ErrInvalidSchedule                              = sdkerrors.Register(ModuleName, 23, "invalid schedule")
	ErrNoWritingSameValue                           = sdkerrors.Register(ModuleName, 24, "new value identical to current value")
	ErrRoundLengthMustBeAtLeastTotalSelectedCollators = sdkerrors.Register(
		ModuleName, 25, "round length must be at least total selected collators",
	)
	ErrTooFewSelectedCandidates = sdkerrors.Register(ModuleName, 26, "total selected below MinSelectedCandidates")
	ErrTooFewBlocksPerRound     = sdkerrors.Register(ModuleName, 27, "blocks per round below MinBlocksPerRound")
	ErrTooManyInvulnerables     = sdkerrors.Register(ModuleName, 28, "invulnerables list exceeds MaxInvulnerables")
	ErrInvalidAuthority         = sdkerrors.Register(ModuleName, 29, "unexpected authority address")
	ErrInvalidParam             = sdkerrors.Register(ModuleName, 30, "invalid parameter")
	ErrCandidateNotRegisteredValidator = sdkerrors.Register(
		ModuleName, 35, "candidate is not a registered validator",
	)

	// hint errors
	ErrTooLowCandidateCountWeightHint      = sdkerrors.Register(ModuleName, 31, "candidate_count hint below real candidate pool size")
	ErrTooLowDelegationCountHint           = sdkerrors.Register(ModuleName, 32, "delegation_count hint below real delegation count")
	ErrTooLowAutoCompoundCountHint         = sdkerrors.Register(ModuleName, 33, "auto_compound_count hint below real auto-compound entry count")
	ErrTooLowDelegatorDelegationCountHint  = sdkerrors.Register(ModuleName, 34, "delegator delegation_count hint below real count")
)
