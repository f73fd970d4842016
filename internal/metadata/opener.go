package metadata

import "fmt"

// Имена способов открытия контейнеров для конфигурации
const (
	BackendNative  = "native"
	BackendFFprobe = "ffprobe"
)

// NewOpener возвращает Opener по имени
func NewOpener(backend string) (Opener, error) {
	switch backend {
	case BackendNative, "":
		return NativeOpener{}, nil
	case BackendFFprobe:
		return FFprobeOpener{}, nil
	}
	return nil, fmt.Errorf("неизвестный способ чтения метаданных: %q", backend)
}
