package configuration

const (
	// DefaultBufferSize is the per-syscall transfer buffer size used when no
	// configuration overrides it.
	DefaultBufferSize = 128 * 1024

	// KeyBufferSize names the configuration key for the transfer buffer size
	// in bytes.
	KeyBufferSize = "RAWCOPY_BUFFER_SIZE"

	// KeyVerify names the configuration key toggling checksum verification.
	KeyVerify = "RAWCOPY_VERIFY"
)

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	BufferSize int
	Verify     bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] with the
// defaults applied.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		BufferSize: DefaultBufferSize,
		Verify:     true,
	}
}

// Populate fills the configuration from the given environment map, leaving
// defaults in place for keys that are absent or invalid.
func (a *AppConfiguration) Populate(c *Handler, envMap map[string]string) {
	if size := c.MapKeyToInt(envMap, KeyBufferSize); size > 0 {
		a.BufferSize = size
	}

	a.Verify = c.MapKeyToBool(envMap, KeyVerify, a.Verify)
}
