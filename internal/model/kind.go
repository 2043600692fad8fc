package model

// ReminderKind identifies one of the three reminder timers.
type ReminderKind string

const (
	KindEyeRest ReminderKind = "eye_rest"
	KindWater   ReminderKind = "water"
	KindStandUp ReminderKind = "stand_up"
)

// AllKinds returns the reminder kinds in display order.
func AllKinds() []ReminderKind {
	return []ReminderKind{KindEyeRest, KindWater, KindStandUp}
}

// IsValidKind checks if a kind string names a known reminder.
func IsValidKind(kind string) bool {
	switch ReminderKind(kind) {
	case KindEyeRest, KindWater, KindStandUp:
		return true
	}
	return false
}

// Label returns a human-readable label for the kind.
func (k ReminderKind) Label() string {
	switch k {
	case KindEyeRest:
		return "Eye Rest"
	case KindWater:
		return "Drink Water"
	case KindStandUp:
		return "Stand Up"
	default:
		return "Reminder"
	}
}

// Message returns the interrupt message shown when the timer fires.
func (k ReminderKind) Message() string {
	switch k {
	case KindEyeRest:
		return "Look away from the screen and rest your eyes."
	case KindWater:
		return "Time to drink some water."
	case KindStandUp:
		return "Stand up and stretch for a bit."
	default:
		return "Take a break."
	}
}

// Icon returns an emoji shortcode for the kind.
func (k ReminderKind) Icon() string {
	switch k {
	case KindEyeRest:
		return "eyes"
	case KindWater:
		return "droplet"
	case KindStandUp:
		return "standing_person"
	default:
		return "bell"
	}
}
