package broodrep

import "time"

// guard enforces the decompression-bomb defenses: an
// absolute output-size cap, a running compression-ratio cap, and (when a
// wall-clock budget is configured) an elapsed-time cap. It is checked after
// every token or chunk a codec produces, never only once per block, so that
// an attacker cannot force a large allocation or CPU burn before the first
// check fires.
type guard struct {
	cfg Config

	produced uint64
	consumed uint64

	started   bool
	startedAt time.Time
}

func newGuard(cfg Config) *guard {
	return &guard{cfg: cfg}
}

// ratioFloor is the minimum produced-byte count before the ratio check is
// enforced, to avoid false positives on tiny initial bursts.
const ratioFloor = 1024

func (g *guard) addConsumed(n int) error {
	g.consumed += uint64(n)
	return g.checkElapsed()
}

// produce records n newly produced bytes and fails if any limit is exceeded.
func (g *guard) produce(n int) error {
	g.produced += uint64(n)

	if g.produced > g.cfg.MaxDecompressedSize {
		return newBombErr(SizeLimit, "decompressed output exceeded the configured maximum")
	}
	if g.consumed > 0 && g.produced >= ratioFloor {
		ratio := float64(g.produced) / float64(g.consumed)
		if ratio > g.cfg.MaxCompressionRatio {
			return newBombErr(RatioLimit, "compression ratio exceeded the configured maximum")
		}
	}
	return g.checkElapsed()
}

func (g *guard) checkElapsed() error {
	if g.cfg.MaxElapsed <= 0 {
		// No wall-clock budget configured: the time limit is disabled.
		return nil
	}
	if !g.started {
		g.started = true
		g.startedAt = time.Now()
		return nil
	}
	if time.Since(g.startedAt) > g.cfg.MaxElapsed {
		return newBombErr(TimeLimit, "decompression exceeded the configured time budget")
	}
	return nil
}

// guardedSink accumulates produced bytes into a growing buffer, routing
// every write through a guard first. Codecs (4.C, 4.D) write to it at
// token/chunk granularity rather than once per block.
type guardedSink struct {
	g   *guard
	out []byte
}

func newGuardedSink(g *guard, capacityHint int) *guardedSink {
	return &guardedSink{g: g, out: make([]byte, 0, capacityHint)}
}

func (s *guardedSink) writeByte(b byte) error {
	if err := s.g.produce(1); err != nil {
		return err
	}
	s.out = append(s.out, b)
	return nil
}

func (s *guardedSink) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if err := s.g.produce(len(p)); err != nil {
		return err
	}
	s.out = append(s.out, p...)
	return nil
}

// copyFrom appends length bytes read starting distance bytes before the
// current end of the output, one byte at a time, so that overlapping
// copies (length > distance, i.e. tail self-repeats) read back bytes this
// same call has already appended. The caller must have already validated
// that distance does not precede the start of output.
func (s *guardedSink) copyFrom(distance, length int) error {
	if err := s.g.produce(length); err != nil {
		return err
	}
	from := len(s.out) - distance
	for i := 0; i < length; i++ {
		s.out = append(s.out, s.out[from+i])
	}
	return nil
}

// sinkCapacityHint bounds the initial allocation for a section's output
// buffer to the smaller of the claimed decompressed size and the guard's
// configured maximum, so a hostile claimed size cannot itself force a large
// up-front allocation.
func sinkCapacityHint(claimed uint32, cfg Config) int {
	c := uint64(claimed)
	if c > cfg.MaxDecompressedSize {
		c = cfg.MaxDecompressedSize
	}
	const hintCap = 1 << 20 // never pre-allocate more than 1MiB on a hint
	if c > hintCap {
		c = hintCap
	}
	return int(c)
}
