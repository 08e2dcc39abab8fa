package segmenting

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/integrator/openai"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/bank-intelligence-api/internal/config"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	"github.com/vfg2006/bank-intelligence-api/pkg/utils"
)

const (
	SourceRules = "rules"
	SourceAI    = "ai"
)

type Segmenter interface {
	RefreshSegments(ctx context.Context) (*domain.SegmentationResponse, error)
	ListSegments() ([]*domain.CustomerSegment, error)
	ListSegmentMembers(segmentID string) ([]*domain.SegmentAssignment, error)
}

type Service struct {
	cfg          *config.Config
	customerRepo repository.CustomerRepository
	segmentRepo  repository.SegmentRepository
	aiProvider   openai.AIProvider
}

func NewService(
	cfg *config.Config,
	customerRepo repository.CustomerRepository,
	segmentRepo repository.SegmentRepository,
	aiProvider openai.AIProvider,
) Segmenter {
	return &Service{
		cfg:          cfg,
		customerRepo: customerRepo,
		segmentRepo:  segmentRepo,
		aiProvider:   aiProvider,
	}
}

// RefreshSegments recalcula a segmentação da carteira inteira e substitui o
// resultado anterior. Tenta o refinamento por IA primeiro; qualquer falha cai
// para a segmentação por regras
func (s *Service) RefreshSegments(ctx context.Context) (*domain.SegmentationResponse, error) {
	customers, err := s.customerRepo.ListCustomers(nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	profiles, source := s.segmentProfiles(customers, now)

	segments, assignments := materializeProfiles(profiles, source)

	if err := s.segmentRepo.ReplaceSegments(ctx, source, segments, assignments); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"segments":  len(segments),
		"customers": len(customers),
		"source":    source,
	}).Info("Segmentação da carteira atualizada")

	return &domain.SegmentationResponse{
		Segments:    profiles,
		Source:      source,
		GeneratedAt: now,
	}, nil
}

func (s *Service) segmentProfiles(customers []*domain.Customer, now time.Time) ([]*domain.SegmentProfile, string) {
	if len(customers) == 0 {
		return []*domain.SegmentProfile{}, SourceRules
	}

	if s.aiProvider != nil && s.aiProvider.Enabled() {
		profiles, err := s.aiSegments(customers)
		if err == nil && len(profiles) > 0 {
			return profiles, SourceAI
		}

		if err != nil {
			logrus.WithError(err).Warn("Refinamento de segmentação por IA falhou, usando segmentação por regras")
		}
	}

	return RuleSegments(customers, now), SourceRules
}

type aiSegmentsResponse struct {
	Segments []struct {
		Code        string   `json:"code"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		CustomerIDs []string `json:"customer_ids"`
	} `json:"segments"`
}

// aiSegments pede ao modelo uma proposta de segmentos sobre um resumo da
// carteira. Uma única ida e volta; quem chama trata o fallback
func (s *Service) aiSegments(customers []*domain.Customer) ([]*domain.SegmentProfile, error) {
	byID := make(map[string]*domain.Customer, len(customers))

	type customerSummary struct {
		ID               string  `json:"id"`
		AccountBalance   float64 `json:"account_balance"`
		AnnualIncome     float64 `json:"annual_income"`
		RiskScore        float64 `json:"risk_score"`
		CreditScore      int     `json:"credit_score"`
		TransactionCount int     `json:"transaction_count"`
		AccountOpenedAt  string  `json:"account_opened_at"`
	}

	summaries := make([]customerSummary, 0, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
		summaries = append(summaries, customerSummary{
			ID:               customer.ID,
			AccountBalance:   customer.AccountBalance,
			AnnualIncome:     customer.AnnualIncome,
			RiskScore:        customer.RiskScore,
			CreditScore:      customer.CreditScore,
			TransactionCount: customer.TransactionCount,
			AccountOpenedAt:  customer.AccountOpenedAt.Format(time.DateOnly),
		})
	}

	payload, err := json.Marshal(summaries)
	if err != nil {
		return nil, err
	}

	var response aiSegmentsResponse
	err = s.aiProvider.GenerateStructured(
		segmentationSystemPrompt,
		"Clientes:\n"+string(payload),
		"customer_segments",
		segmentationSchema,
		&response,
	)
	if err != nil {
		return nil, err
	}

	profiles := make([]*domain.SegmentProfile, 0, len(response.Segments))

	for _, proposed := range response.Segments {
		members := make([]*domain.Customer, 0, len(proposed.CustomerIDs))
		for _, customerID := range proposed.CustomerIDs {
			// IDs desconhecidos retornados pelo modelo são ignorados
			if customer, ok := byID[customerID]; ok {
				members = append(members, customer)
			}
		}

		if len(members) == 0 {
			continue
		}

		profiles = append(profiles, buildProfile(proposed.Code, proposed.Name, proposed.Description, members))
	}

	return profiles, nil
}

// materializeProfiles converte os perfis em linhas de segmento e atribuição
func materializeProfiles(profiles []*domain.SegmentProfile, source string) ([]*domain.CustomerSegment, []*domain.SegmentAssignment) {
	segments := make([]*domain.CustomerSegment, 0, len(profiles))
	assignments := make([]*domain.SegmentAssignment, 0)

	for _, profile := range profiles {
		segmentID, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar ID de segmento")
			continue
		}

		segments = append(segments, &domain.CustomerSegment{
			ID:          segmentID,
			Code:        profile.Code,
			Name:        profile.Name,
			Description: profile.Description,
			Source:      source,
			MemberCount: len(profile.CustomerIDs),
			AvgBalance:  profile.AvgBalance,
			AvgIncome:   profile.AvgIncome,
			AvgRisk:     profile.AvgRisk,
			AvgCLV:      profile.AvgCLV,
		})

		for _, customerID := range profile.CustomerIDs {
			assignmentID, err := utils.GenerateID()
			if err != nil {
				logrus.WithError(err).Error("Erro ao gerar ID de atribuição")
				continue
			}

			assignments = append(assignments, &domain.SegmentAssignment{
				ID:         assignmentID,
				SegmentID:  segmentID,
				CustomerID: customerID,
			})
		}
	}

	return segments, assignments
}

func (s *Service) ListSegments() ([]*domain.CustomerSegment, error) {
	return s.segmentRepo.ListSegments()
}

func (s *Service) ListSegmentMembers(segmentID string) ([]*domain.SegmentAssignment, error) {
	return s.segmentRepo.ListAssignments(segmentID)
}
