package dashboard

import (
	"math"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"founderreach/internal/founder"
	"founderreach/internal/outreach"
)

// recentLimit is the number of records shown on the dashboard page.
const recentLimit = 10

// Stats is the response of GET /api/stats.
type Stats struct {
	TotalFounders     int     `json:"total_founders"`
	TotalMessagesSent int     `json:"total_messages_sent"`
	TotalReplies      int     `json:"total_replies"`
	ReplyRate         float64 `json:"reply_rate"`
}

// DashboardData is passed to the dashboard view.
type DashboardData struct {
	Stats         *Stats
	RecentRecords []outreach.Record
}

// Service aggregates counts from the founder and outreach stores.
type Service struct {
	founderStore  *founder.Store
	outreachStore *outreach.Store
	outreach      *outreach.Service
}

// NewService creates a new Service.
func NewService(fs *founder.Store, rs *outreach.Store, records *outreach.Service) *Service {
	return &Service{
		founderStore:  fs,
		outreachStore: rs,
		outreach:      records,
	}
}

// GetStats runs the three counts in parallel and derives the reply rate.
func (s *Service) GetStats() (*Stats, error) {
	var stats Stats
	var eg errgroup.Group

	eg.Go(func() error {
		count, err := s.founderStore.CountFounders()
		if err != nil {
			log.Errorf("[ERROR] GetStats: CountFounders failed: %v", err)
			return err
		}
		stats.TotalFounders = count
		return nil
	})

	eg.Go(func() error {
		count, err := s.outreachStore.CountByStatus(outreach.SentStatuses)
		if err != nil {
			log.Errorf("[ERROR] GetStats: count sent failed: %v", err)
			return err
		}
		stats.TotalMessagesSent = count
		return nil
	})

	eg.Go(func() error {
		count, err := s.outreachStore.CountByStatus(outreach.RepliedStatuses)
		if err != nil {
			log.Errorf("[ERROR] GetStats: count replies failed: %v", err)
			return err
		}
		stats.TotalReplies = count
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats.ReplyRate = ReplyRate(stats.TotalReplies, stats.TotalMessagesSent)
	return &stats, nil
}

// ReplyRate returns replies/sent as a percentage rounded to one decimal, 0 when nothing was sent.
func ReplyRate(replies, sent int) float64 {
	if sent == 0 {
		return 0
	}
	return math.Round(float64(replies)/float64(sent)*1000) / 10
}

// GetDashboardData returns the stats and the most recently updated records.
func (s *Service) GetDashboardData() (*DashboardData, error) {
	stats, err := s.GetStats()
	if err != nil {
		return nil, err
	}
	recent, err := s.outreach.List(outreach.Filter{Limit: recentLimit})
	if err != nil {
		log.Errorf("[ERROR] GetDashboardData: recent records failed: %v", err)
		return nil, err
	}
	return &DashboardData{Stats: stats, RecentRecords: recent}, nil
}
