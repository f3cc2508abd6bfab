package domain

// ToolEffect is the set of tool field changes triggered by a reservation
// transition. Nil fields are left untouched. Effects are applied at the
// storage layer in the same transaction as the transition that produced them.
type ToolEffect struct {
	Status              *ToolStatus
	Condition           *ToolCondition
	LastMaintenanceDate *string
}

// IsZero reports whether the effect changes nothing.
func (e ToolEffect) IsZero() bool {
	return e.Status == nil && e.Condition == nil && e.LastMaintenanceDate == nil
}

// ActivationEffect is applied when a reservation enters ACTIVE: the tool is
// taken off the shelf.
func ActivationEffect() ToolEffect {
	s := ToolStatusUnavailable
	return ToolEffect{Status: &s}
}

// CompletionEffect is applied when a reservation enters COMPLETED. The tool
// returns to AVAILABLE with the condition recorded at closeout; a BAD
// condition also stamps the maintenance date.
func CompletionEffect(recorded ToolCondition, completedOn string) ToolEffect {
	s := ToolStatusAvailable
	eff := ToolEffect{Status: &s, Condition: &recorded}
	if recorded == ToolConditionBad {
		d := completedOn
		eff.LastMaintenanceDate = &d
	}
	return eff
}

// CancellationEffect is applied when a PENDING reservation is cancelled or
// rejected. The tool was never marked unavailable, so nothing changes.
func CancellationEffect() ToolEffect {
	return ToolEffect{}
}
