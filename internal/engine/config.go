// Package engine holds the settings and chat profiles shared by the
// inference engine bindings.
package engine

// Config contains inference engine settings.
// The runtime fields (Slots through GPULayers) are forwarded to engines that
// manage a local model and ignored by the others.
type Config struct {
	Backend       string `env:"ENGINE_BACKEND"       envDefault:"echo"`
	ModelPath     string `env:"MODEL_PATH"`
	ProjectorPath string `env:"MODEL_PROJECTOR_PATH"`
	ProfileFile   string `env:"ENGINE_PROFILE_FILE"`

	BaseURL    string `env:"ENGINE_BASE_URL"`
	APIKey     string `env:"ENGINE_API_KEY"`
	Timeout    int    `env:"ENGINE_TIMEOUT"     envDefault:"120"`
	MaxRetries int    `env:"ENGINE_MAX_RETRIES" envDefault:"0"`

	Slots       int  `env:"ENGINE_SLOTS"        envDefault:"8"`
	ContextSize int  `env:"ENGINE_CONTEXT_SIZE" envDefault:"4096"`
	BatchSize   int  `env:"ENGINE_BATCH_SIZE"   envDefault:"2048"`
	Keep        int  `env:"ENGINE_KEEP"         envDefault:"512"`
	UseMMap     bool `env:"ENGINE_USE_MMAP"     envDefault:"true"`
	Threads     int  `env:"ENGINE_THREADS"      envDefault:"10"`
	GPULayers   int  `env:"ENGINE_GPU_LAYERS"   envDefault:"-1"`
}
