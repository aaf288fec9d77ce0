package casino

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

// RNG is the draw source the engines consume. Draws must be independent
// and uniform over [0,n).
type RNG interface {
	Intn(n int) int
}

// Roller derives a uniform integer stream from HMAC-SHA256 over
// serverSeed, clientSeed and a per-round nonce, so any settled round can
// be re-derived and audited once the server seed is revealed.
type Roller struct {
	key    []byte
	prefix string
	block  int
	buf    []byte
}

func NewRoller(serverSeed, clientSeed string, nonce int) *Roller {
	return &Roller{
		key:    []byte(serverSeed),
		prefix: clientSeed + ":" + strconv.Itoa(nonce) + ":",
	}
}

// Intn returns a uniform value in [0,n) by rejection sampling 32-bit
// chunks of the HMAC stream.
func (r *Roller) Intn(n int) int {
	if n <= 0 {
		panic("casino: Intn range must be positive")
	}
	limit := (1 << 32) / uint64(n) * uint64(n)
	for {
		v := uint64(r.next32())
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

func (r *Roller) next32() uint32 {
	if len(r.buf) < 4 {
		h := hmac.New(sha256.New, r.key)
		h.Write([]byte(r.prefix + strconv.Itoa(r.block)))
		r.buf = h.Sum(nil)
		r.block++
	}
	v := binary.BigEndian.Uint32(r.buf[:4])
	r.buf = r.buf[4:]
	return v
}

// SeedManager owns the rotating server seed. Only the hash is published
// before rotation.
type SeedManager struct {
	mu         sync.Mutex
	serverSeed string
	hash       string
	rotatedAt  time.Time
}

func NewSeedManager() *SeedManager {
	s := &SeedManager{}
	s.rotate()
	return s
}

func (s *SeedManager) rotate() {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	seed := hex.EncodeToString(buf)
	sum := sha256.Sum256([]byte(seed))

	s.serverSeed = seed
	s.hash = hex.EncodeToString(sum[:])
	s.rotatedAt = time.Now()
}

// Start runs the rotation check on a timer so the seed turns over even
// when no rounds are played.
func (s *SeedManager) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.MaybeRotate()
		case <-ctx.Done():
			return
		}
	}
}

func (s *SeedManager) MaybeRotate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Since(s.rotatedAt).Hours() > 24 {
		s.rotate()
	}
}

// Current returns the active seed and its published hash.
func (s *SeedManager) Current() (seed, hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverSeed, s.hash
}
