package client

// RenderPlan dice qué fetches hacen falta y qué dashboard se muestra para
// un estado de sesión dado.
type RenderPlan struct {
	ShowFeed  bool
	Dashboard UserType
}

// PlanFor es la máquina de estados sobre UserType. Es una función pura:
// mismo estado, misma decisión, siempre.
//
//	none   → solo feed
//	tenant → dashboard de tenant Y feed, ambos en cada transición
//	owner  → solo dashboard de owner; un owner no ve el feed
func PlanFor(s Session) RenderPlan {
	switch s.UserType {
	case UserTypeTenant:
		return RenderPlan{ShowFeed: true, Dashboard: UserTypeTenant}
	case UserTypeOwner:
		return RenderPlan{ShowFeed: false, Dashboard: UserTypeOwner}
	default:
		return RenderPlan{ShowFeed: true, Dashboard: UserTypeNone}
	}
}
