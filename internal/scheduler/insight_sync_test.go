package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/bank-intelligence-api/internal/domain"
	insightmocks "github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func TestInsightSyncService_syncPortfolioInsights(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(mockInsighter *insightmocks.MockInsighter)
		expectSuccess bool
	}{
		{
			name: "rodada gera e persiste insights",
			setup: func(mockInsighter *insightmocks.MockInsighter) {
				mockInsighter.EXPECT().
					GenerateInsights(gomock.Any()).
					Return([]*domain.AIInsight{
						{ID: "INS001", Title: "Concentração de risco no segmento varejo"},
						{ID: "INS002", Title: "Oportunidade de investimento para alto valor"},
					}, nil)
			},
			expectSuccess: true,
		},
		{
			name: "rodada com provedor desabilitado gera lista vazia e conclui",
			setup: func(mockInsighter *insightmocks.MockInsighter) {
				mockInsighter.EXPECT().
					GenerateInsights(gomock.Any()).
					Return([]*domain.AIInsight{}, nil)
			},
			expectSuccess: true,
		},
		{
			name: "erro na geração não marca a rodada como concluída",
			setup: func(mockInsighter *insightmocks.MockInsighter) {
				mockInsighter.EXPECT().
					GenerateInsights(gomock.Any()).
					Return(nil, errors.New("erro ao consultar clientes"))
			},
			expectSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockInsighter := insightmocks.NewMockInsighter(ctrl)
			tt.setup(mockInsighter)

			service := &InsightSyncService{
				config: InsightSyncConfig{
					CronSchedule: "0 5 * * *",
					SyncEnabled:  true,
				},
				insightService: mockInsighter,
			}

			service.syncPortfolioInsights(context.Background())

			assert.False(t, service.lastSyncStartedAt.IsZero())
			assert.Equal(t, tt.expectSuccess, !service.lastSyncCompletedAt.IsZero())
			assert.False(t, service.syncRunning)
		})
	}
}

func TestInsightSyncService_syncPortfolioInsights_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao serviço de insights é esperada
	mockInsighter := insightmocks.NewMockInsighter(ctrl)

	service := &InsightSyncService{
		insightService: mockInsighter,
		syncRunning:    true,
	}

	service.syncPortfolioInsights(context.Background())

	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestInsightSyncService_GetStatus(t *testing.T) {
	service := &InsightSyncService{
		config: InsightSyncConfig{
			CronSchedule: "0 5 * * *",
			SyncEnabled:  false,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
}
