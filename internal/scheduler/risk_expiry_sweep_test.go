package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestRiskExpirySweepService_sweepExpiredAssessments(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(mockRepo *mocks.MockRiskAssessmentRepository)
		expectSuccess bool
	}{
		{
			name: "varredura resolve avaliações vencidas",
			setup: func(mockRepo *mocks.MockRiskAssessmentRepository) {
				mockRepo.EXPECT().
					ResolveExpired().
					Return(int64(3), nil)
			},
			expectSuccess: true,
		},
		{
			name: "erro no banco não marca a varredura como concluída",
			setup: func(mockRepo *mocks.MockRiskAssessmentRepository) {
				mockRepo.EXPECT().
					ResolveExpired().
					Return(int64(0), errors.New("connection refused"))
			},
			expectSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRiskAssessmentRepository(ctrl)
			tt.setup(mockRepo)

			service := &RiskExpirySweepService{
				config: RiskExpirySweepConfig{
					CronSchedule: "0 2 * * *",
					SweepEnabled: true,
				},
				riskRepo: mockRepo,
			}

			service.sweepExpiredAssessments()

			assert.False(t, service.lastSweepStartedAt.IsZero())
			assert.Equal(t, tt.expectSuccess, !service.lastSweepCompletedAt.IsZero())
			assert.False(t, service.sweepRunning)
		})
	}
}

func TestRiskExpirySweepService_sweepExpiredAssessments_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao repositório é esperada
	mockRepo := mocks.NewMockRiskAssessmentRepository(ctrl)

	service := &RiskExpirySweepService{
		riskRepo:     mockRepo,
		sweepRunning: true,
	}

	service.sweepExpiredAssessments()

	assert.True(t, service.lastSweepStartedAt.IsZero())
}

func TestRiskExpirySweepService_GetStatus(t *testing.T) {
	service := &RiskExpirySweepService{
		config: RiskExpirySweepConfig{
			CronSchedule: "0 2 * * *",
			SweepEnabled: true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sweep_enabled"])
	assert.Equal(t, "0 2 * * *", status["sweep_cron"])
}
