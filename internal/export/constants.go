package export

// WAV output constants
const (
	// DefaultSampleRate is the playback rate of an exported curve in Hz.
	// 900 samples last about 20 ms.
	DefaultSampleRate = 44100

	// DefaultBitDepth is the PCM sample width of an exported curve.
	DefaultBitDepth = bitsPerSample16

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values for each PCM width
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	monoChannels = 1
	pcmFormat    = 1 // WAVE_FORMAT_PCM
)

// CSV constants
const (
	csvDomainColumn = "domain"
	csvRangeColumn  = "range"
	csvColumns      = 2
)
