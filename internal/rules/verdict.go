package rules

import "gatherly/invitehub/internal/model"

// MinQuorum is the floor for capacity_min; invalid values clamp up to it.
const MinQuorum = 2

// ComputeVerdict decides the final outcome from the quorum and the final YES
// count. Deterministic; the write-once guard on the invitation row makes
// repeated invocations no-ops.
func ComputeVerdict(capacityMin, yesCount int) model.Verdict {
	if capacityMin < MinQuorum {
		capacityMin = MinQuorum
	}
	if yesCount >= capacityMin {
		return model.VerdictSuccess
	}
	return model.VerdictFailure
}
