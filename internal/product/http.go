package product

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const (
	minWork = 10 * time.Millisecond
	maxWork = 200 * time.Millisecond
)

// Server owns the listing logic; Log must be set.
type Server struct {
	Log *zap.Logger

	// Work returns the simulated processing time for one request. Nil uses a
	// uniform draw between minWork and maxWork.
	Work func() time.Duration
}

// RandomWork draws a duration uniformly from [minWork, maxWork).
func RandomWork() time.Duration {
	return minWork + rand.N(maxWork-minWork)
}

func (s *Server) ListHandler() http.HandlerFunc { return s.list }

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	work := s.Work
	if work == nil {
		work = RandomWork
	}

	if err := sleep(r.Context(), work()); err != nil {
		s.Log.Debug("request cancelled during work", zap.Error(err))
		return
	}

	kit.WriteJSON(w, http.StatusOK, Fixed())
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
