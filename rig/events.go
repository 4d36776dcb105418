package rig

import (
	"strconv"

	"github.com/rigshare/librigshare-go/events"
	"github.com/rigshare/librigshare-go/identity"
)

// Event types emitted by the ledger.
const (
	EventTypeRegistered        = "rig.registered"
	EventTypeSharesBought      = "rig.shares_bought"
	EventTypeRewardsDeposited  = "rig.rewards_deposited"
	EventTypeRewardsClaimed    = "rig.rewards_claimed"
	EventTypeTokensTransferred = "rig.tokens_transferred"
)

// newRegisteredEvent returns the canonical payload for a new registration.
func newRegisteredEvent(info *RegistrationInfo) events.Event {
	return events.Event{
		Type: EventTypeRegistered,
		Attributes: map[string]string{
			"operator":    info.Operator.String(),
			"totalShares": strconv.FormatUint(info.TotalShares, 10),
			"sharesSold":  strconv.FormatUint(info.SharesSold, 10),
		},
	}
}

// newSharesBoughtEvent returns the payload for a completed purchase.
func newSharesBoughtEvent(buyer identity.Address, amount, sharesSold uint64) events.Event {
	return events.Event{
		Type: EventTypeSharesBought,
		Attributes: map[string]string{
			"buyer":      buyer.String(),
			"amount":     strconv.FormatUint(amount, 10),
			"sharesSold": strconv.FormatUint(sharesSold, 10),
		},
	}
}

// newRewardsDepositedEvent returns the payload for a reward deposit.
func newRewardsDepositedEvent(depositor identity.Address, amount uint64) events.Event {
	return events.Event{
		Type: EventTypeRewardsDeposited,
		Attributes: map[string]string{
			"depositor": depositor.String(),
			"amount":    strconv.FormatUint(amount, 10),
		},
	}
}

// newRewardsClaimedEvent returns the payload for a completed claim.
func newRewardsClaimedEvent(claimer identity.Address, payout, remaining uint64) events.Event {
	return events.Event{
		Type: EventTypeRewardsClaimed,
		Attributes: map[string]string{
			"claimer":   claimer.String(),
			"payout":    strconv.FormatUint(payout, 10),
			"remaining": strconv.FormatUint(remaining, 10),
		},
	}
}

// newTokensTransferredEvent returns the payload for a ledger-mediated
// share transfer.
func newTokensTransferredEvent(from, to identity.Address, amount uint64) events.Event {
	return events.Event{
		Type: EventTypeTokensTransferred,
		Attributes: map[string]string{
			"from":   from.String(),
			"to":     to.String(),
			"amount": strconv.FormatUint(amount, 10),
		},
	}
}
