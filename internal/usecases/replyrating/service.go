package replyrating

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/outreach-dashboard-api/infrastructure/integrator/outreach"
	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
	"github.com/vfg2006/outreach-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/outreach-dashboard-api/pkg/utils"
)

type ReplyRater interface {
	// GetReplyRatesByProvider monta a matriz provedor do remetente → provedor de quem respondeu
	GetReplyRatesByProvider(ctx context.Context, workspace domain.Workspace) (*domain.WorkspaceReplyRates, error)
}

type Service struct {
	outreachService outreach.OutreachIntegrator
	classifier      classifying.Classifier
}

func NewService(outreachService outreach.OutreachIntegrator, classifier classifying.Classifier) ReplyRater {
	return &Service{
		outreachService: outreachService,
		classifier:      classifier,
	}
}

// providerAccumulator guarda o total enviado por um provedor de remetente
// e as respostas recebidas agrupadas pelo provedor de quem respondeu
type providerAccumulator struct {
	totalSent int64
	replies   map[domain.ProviderCategory]int64
}

func (s *Service) GetReplyRatesByProvider(ctx context.Context, workspace domain.Workspace) (*domain.WorkspaceReplyRates, error) {
	senders, err := s.outreachService.ListSenderEmails(ctx, workspace)
	if err != nil {
		return nil, errors.Wrapf(err, "remetentes do workspace %s", workspace.Name)
	}

	accumulators := make(map[domain.ProviderCategory]*providerAccumulator)

	// Um remetente por vez; detalhes e respostas de cada um em paralelo
	for _, sender := range senders {
		var (
			detail  *domain.SenderIdentity
			replies []domain.Reply
		)

		var g errgroup.Group

		g.Go(func() error {
			var err error
			detail, err = s.outreachService.GetSenderEmail(ctx, workspace, sender.ID)
			return err
		})

		g.Go(func() error {
			var err error
			replies, err = s.outreachService.ListSenderEmailReplies(ctx, workspace, sender.ID)
			return err
		})

		if err := g.Wait(); err != nil {
			logrus.WithFields(logrus.Fields{
				"workspace":       workspace.Name,
				"sender_email_id": sender.ID,
				"error":           err.Error(),
			}).Error("replyrating: falha ao buscar detalhes do remetente")
			return nil, errors.Wrapf(err, "remetente %d do workspace %s", sender.ID, workspace.Name)
		}

		senderProvider := s.classifier.Classify(ctx, detail.Email)

		acc, exists := accumulators[senderProvider]
		if !exists {
			acc = &providerAccumulator{replies: make(map[domain.ProviderCategory]int64)}
			accumulators[senderProvider] = acc
		}

		acc.totalSent += detail.EmailsSentCount

		for _, reply := range replies {
			replyProvider := s.classifier.Classify(ctx, reply.FromEmailAddress)
			acc.replies[replyProvider]++
		}
	}

	rows := buildReplyRateRows(accumulators)

	logrus.WithFields(logrus.Fields{
		"workspace": workspace.Name,
		"senders":   len(senders),
		"rows":      len(rows),
	}).Info("replyrating: matriz de respostas por provedor calculada")

	return &domain.WorkspaceReplyRates{
		WorkspaceName: workspace.Name,
		Data:          rows,
	}, nil
}

// buildReplyRateRows gera uma linha por combinação com ao menos uma resposta, ordenada pelo rótulo
func buildReplyRateRows(accumulators map[domain.ProviderCategory]*providerAccumulator) []domain.ProviderReplyRate {
	rows := []domain.ProviderReplyRate{}

	for senderProvider, acc := range accumulators {
		for replyProvider, replyCount := range acc.replies {
			rows = append(rows, domain.ProviderReplyRate{
				ProviderCombination: domain.ProviderCombinationLabel(senderProvider, replyProvider),
				TotalReplies:        replyCount,
				TotalSent:           acc.totalSent,
				ReplyRate:           utils.FormatPercentage(replyCount, acc.totalSent),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProviderCombination < rows[j].ProviderCombination
	})

	return rows
}
