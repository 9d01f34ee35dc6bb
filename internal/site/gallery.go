package site

import (
	"context"
	"fmt"
	"sync"
	"time"

	"destiny-global-backend/internal/domain"
)

// DefaultAutoAdvance is how often an open lightbox moves to the next image
const DefaultAutoAdvance = 4 * time.Second

// Key is a keyboard key understood by the lightbox
type Key string

const (
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeyEscape Key = "Escape"
)

// GalleryState is a snapshot for rendering
type GalleryState struct {
	ProductID string
	Index     int
	Count     int
	Open      bool
	Image     string
	Caption   string
}

// Gallery is the image carousel and lightbox of the selected product.
// While open, a goroutine advances it every interval; Close stops that
// goroutine and waits for it, so no tick lands on stale state.
type Gallery struct {
	interval time.Duration
	onChange func(GalleryState)

	mu      sync.Mutex
	product *domain.Product
	index   int
	open    bool
	stop    context.CancelFunc
	done    chan struct{}
}

// NewGallery creates a closed gallery. interval <= 0 disables auto-advance.
// onChange, if set, receives a snapshot after every change; it may run on the
// auto-advance goroutine and must not call Close or SetProduct.
func NewGallery(interval time.Duration, onChange func(GalleryState)) *Gallery {
	return &Gallery{interval: interval, onChange: onChange}
}

// SetProduct closes the lightbox and points the gallery at p's first image
func (g *Gallery) SetProduct(p *domain.Product) {
	g.Close()

	g.mu.Lock()
	g.product = p
	g.index = 0
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.notify(snap)
}

// Next moves forward, wrapping from the last image to the first
func (g *Gallery) Next() {
	g.move(1)
}

// Prev moves backward, wrapping from the first image to the last
func (g *Gallery) Prev() {
	g.move(-1)
}

func (g *Gallery) move(delta int) {
	g.mu.Lock()
	if g.product == nil {
		g.mu.Unlock()
		return
	}
	g.index = wrap(g.index+delta, len(g.product.Images))
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.notify(snap)
}

// OpenAt shows image i in the lightbox and starts auto-advance. i is taken
// modulo the image count.
func (g *Gallery) OpenAt(i int) error {
	g.mu.Lock()
	if g.product == nil {
		g.mu.Unlock()
		return ErrNoProductSelected
	}
	g.index = wrap(i, len(g.product.Images))
	if !g.open {
		g.open = true
		g.startLocked()
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.notify(snap)
	return nil
}

// Close hides the lightbox and tears down auto-advance. Safe to call when
// already closed.
func (g *Gallery) Close() {
	g.mu.Lock()
	wasOpen := g.open
	g.open = false
	stop, done := g.stop, g.done
	g.stop, g.done = nil, nil
	snap := g.snapshotLocked()
	g.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}
	if wasOpen {
		g.notify(snap)
	}
}

// HandleKey applies a key press. Keys are ignored while the lightbox is
// closed; the result reports whether the key was consumed.
func (g *Gallery) HandleKey(k Key) bool {
	if !g.IsOpen() {
		return false
	}
	switch k {
	case KeyLeft:
		g.Prev()
	case KeyRight:
		g.Next()
	case KeyEscape:
		g.Close()
	default:
		return false
	}
	return true
}

func (g *Gallery) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

func (g *Gallery) Index() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.index
}

func (g *Gallery) State() GalleryState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Gallery) startLocked() {
	if g.interval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	g.stop, g.done = cancel, done
	go g.autoAdvance(ctx, done)
}

func (g *Gallery) autoAdvance(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.mu.Lock()
			// Close may have won the race for the lock
			if ctx.Err() != nil || !g.open || g.product == nil {
				g.mu.Unlock()
				return
			}
			g.index = wrap(g.index+1, len(g.product.Images))
			snap := g.snapshotLocked()
			g.mu.Unlock()

			g.notify(snap)
		}
	}
}

func (g *Gallery) snapshotLocked() GalleryState {
	s := GalleryState{Index: g.index, Open: g.open}
	if g.product == nil {
		return s
	}
	s.ProductID = g.product.ID
	s.Count = len(g.product.Images)
	if s.Count > 0 {
		s.Image = g.product.Images[g.index]
		s.Caption = fmt.Sprintf("%s - %d / %d", g.product.Name, g.index+1, s.Count)
	}
	return s
}

func (g *Gallery) notify(s GalleryState) {
	if g.onChange != nil {
		g.onChange(s)
	}
}

// wrap maps any integer onto [0, n)
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
