package constants

import "time"

var WebSocketConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	HandshakeTimeout     time.Duration
	ListenerStopTimeout  time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
	HandshakeTimeout:     10 * time.Second,
	ListenerStopTimeout:  5 * time.Second,
}

var IrisConfig = struct {
	RequestTimeout   time.Duration
	BreakerThreshold int
	BreakerCooldown  time.Duration
}{
	RequestTimeout:   10 * time.Second,
	BreakerThreshold: 5,
	BreakerCooldown:  30 * time.Second,
}

var InputLimits = struct {
	MaxMessageLength int // 채팅 명령 전체 길이
	MaxKeywords      int // 한 번에 받을 키워드 수
	MaxNameLength    int // 이름풀이 입력 길이
}{
	MaxMessageLength: 300,
	MaxKeywords:      8,
	MaxNameLength:    80,
}

var CommandTimeout = struct {
	Execute  time.Duration
	Build    time.Duration
	Shutdown time.Duration
}{
	Execute:  15 * time.Second,
	Build:    30 * time.Second,
	Shutdown: 10 * time.Second,
}
