// Package dashboard computes the derived accounting views. Every value
// here is recomputed from the current projects and disputes on each
// call; nothing is stored redundantly, so the numbers can never drift
// from the source rows.
package dashboard

import (
	"math"

	"trustlance/internal/models"
	"trustlance/internal/repositories"
)

type ClientStats struct {
	ActiveProjects  int     `json:"active_projects"`
	EscrowBalance   float64 `json:"escrow_balance"`
	ActiveDisputes  int     `json:"active_disputes"`
	AwaitingReview  int     `json:"awaiting_review"`
	ReleasedToDate  float64 `json:"released_to_date"`
}

type FreelancerStats struct {
	ActiveProjects   int     `json:"active_projects"`
	TotalEarnings    float64 `json:"total_earnings"`
	ReliabilityScore int     `json:"reliability_score"`
	ActiveMilestones int     `json:"active_milestones"`
}

type AdminStats struct {
	TotalProjects    int     `json:"total_projects"`
	ActiveDisputes   int     `json:"active_disputes"`
	ResolvedDisputes int     `json:"resolved_disputes"`
	TotalEscrow      float64 `json:"total_escrow"`
}

type Service interface {
	ClientDashboard(clientID uint) (*ClientStats, error)
	FreelancerDashboard(freelancer *models.User) (*FreelancerStats, error)
	AdminDashboard() (*AdminStats, error)
}

type service struct {
	projects repositories.ProjectRepository
	disputes repositories.DisputeRepository
}

func NewService(projects repositories.ProjectRepository, disputes repositories.DisputeRepository) Service {
	if projects == nil || disputes == nil {
		panic("project and dispute repositories are required")
	}
	return &service{projects: projects, disputes: disputes}
}

func (s *service) ClientDashboard(clientID uint) (*ClientStats, error) {
	projects, err := s.projects.ListByClient(clientID)
	if err != nil {
		return nil, err
	}

	stats := &ClientStats{ActiveProjects: len(projects)}
	for i := range projects {
		p := &projects[i]
		if p.EscrowStatus == models.EscrowLocked {
			stats.EscrowBalance += p.TotalAmount
		}
		for _, m := range p.Milestones {
			switch m.Status {
			case models.MilestoneSubmitted:
				stats.AwaitingReview++
			case models.MilestoneApproved:
				stats.ReleasedToDate += m.Amount
			}
		}

		active, err := s.disputes.ExistsActiveByProjectID(p.ID)
		if err != nil {
			return nil, err
		}
		if active {
			stats.ActiveDisputes++
		}
	}
	return stats, nil
}

func (s *service) FreelancerDashboard(freelancer *models.User) (*FreelancerStats, error) {
	projects, err := s.projects.ListByFreelancer(freelancer.ID)
	if err != nil {
		return nil, err
	}

	stats := &FreelancerStats{ActiveProjects: len(projects)}
	approved, onTime := 0, 0
	for i := range projects {
		for _, m := range projects[i].Milestones {
			switch m.Status {
			case models.MilestoneApproved:
				stats.TotalEarnings += m.Amount
				approved++
				if m.SubmittedDate != nil && !m.SubmittedDate.After(m.DueDate) {
					onTime++
				}
			case models.MilestonePending, models.MilestoneInProgress:
				stats.ActiveMilestones++
			}
		}
	}

	stats.ReliabilityScore = reliability(freelancer, approved, onTime)
	return stats, nil
}

func (s *service) AdminDashboard() (*AdminStats, error) {
	projects, err := s.projects.ListAll()
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{TotalProjects: len(projects)}
	for i := range projects {
		if projects[i].EscrowStatus == models.EscrowLocked {
			stats.TotalEscrow += projects[i].TotalAmount
		}
	}

	active, err := s.disputes.ListActive()
	if err != nil {
		return nil, err
	}
	resolved, err := s.disputes.ListResolved()
	if err != nil {
		return nil, err
	}
	stats.ActiveDisputes = len(active)
	stats.ResolvedDisputes = len(resolved)
	return stats, nil
}

// reliability is the on-time share of approved milestones as a rounded
// percentage. With no approvals yet it falls back to the freelancer's
// stored baseline score, defaulting to 100.
func reliability(freelancer *models.User, approved, onTime int) int {
	if approved == 0 {
		if freelancer.ReliabilityScore != nil {
			return *freelancer.ReliabilityScore
		}
		return 100
	}
	return int(math.Round(float64(onTime) / float64(approved) * 100))
}
