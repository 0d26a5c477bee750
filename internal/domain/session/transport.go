package session

// Transport is the external real-time media channel. The lifecycle only
// signals toggle intent; it never awaits or models transport acknowledgement.
type Transport interface {
	SetVideoEnabled(on bool)
	SetAudioEnabled(on bool)
	SetScreenShare(on bool)
}
