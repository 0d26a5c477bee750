package consultation

import (
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

type Device string

const (
	DeviceVideo  Device = "video"
	DeviceAudio  Device = "audio"
	DeviceScreen Device = "screen"
)

type ToggleDevice struct {
	registry *domain.Registry
}

func NewToggleDevice(registry *domain.Registry) *ToggleDevice {
	return &ToggleDevice{registry: registry}
}

// Execute flips one device flag and reports the new state.
func (uc *ToggleDevice) Execute(sessionID string, caller Caller, device Device) (bool, error) {
	s, ok := uc.registry.Get(sessionID)
	if !ok {
		return false, httperr.ErrBusiness("session_not_found")
	}
	if err := requireParticipant(s, caller); err != nil {
		return false, err
	}

	switch device {
	case DeviceVideo:
		return s.ToggleVideo()
	case DeviceAudio:
		return s.ToggleAudio()
	case DeviceScreen:
		return s.ToggleScreenShare()
	default:
		return false, httperr.ErrBusiness("invalid_device")
	}
}
