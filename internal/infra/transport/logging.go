package transport

import "go.uber.org/zap"

// LoggingTransport records toggle intents and nothing else. The real media
// channel lives outside this service.
type LoggingTransport struct {
	log *zap.Logger
}

func NewLoggingTransport(log *zap.Logger) *LoggingTransport {
	return &LoggingTransport{log: log}
}

func (t *LoggingTransport) SetVideoEnabled(on bool) {
	t.log.Debug("transport intent", zap.String("device", "video"), zap.Bool("enabled", on))
}

func (t *LoggingTransport) SetAudioEnabled(on bool) {
	t.log.Debug("transport intent", zap.String("device", "audio"), zap.Bool("enabled", on))
}

func (t *LoggingTransport) SetScreenShare(on bool) {
	t.log.Debug("transport intent", zap.String("device", "screen"), zap.Bool("enabled", on))
}
