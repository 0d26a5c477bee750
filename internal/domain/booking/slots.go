package booking

// TimeSlots is the fixed daily slot set the wizard offers. Drafts may only
// carry a member of this list.
var TimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
	"5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM",
}

func IsBookableSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
