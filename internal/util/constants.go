package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Listening audio upload constraints
const (
	AudioDir          = "test-audio"
	MaxAudioSizeBytes = 10 << 20
)

var (
	AllowedAudioExtensions = []string{".mp3", ".wav", ".ogg", ".m4a"}
	AllowedAudioMimeTypes  = []string{"audio/", "application/ogg", "video/mp4", "application/octet-stream"}
)
