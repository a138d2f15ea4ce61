package classifying

import (
	"context"
	"net"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/outreach-dashboard-api/internal/domain"
)

// MXResolver é satisfeito por *net.Resolver
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

type Classifier interface {
	Classify(ctx context.Context, email string) domain.ProviderCategory
}

type Service struct {
	resolver MXResolver
}

func NewService(resolver MXResolver) Classifier {
	return &Service{
		resolver: resolver,
	}
}

// Classify identifica o provedor do endereço pelo primeiro registro MX do domínio.
// Nunca retorna erro: falhas de DNS viram Unknown.
//
// A regra é uma heurística: qualquer host contendo "google" ou "outlook" é
// classificado assim, e só o primeiro registro devolvido é considerado.
func (s *Service) Classify(ctx context.Context, email string) domain.ProviderCategory {
	emailDomain := extractDomain(email)
	if emailDomain == "" {
		return domain.ProviderUnknown
	}

	// LookupMX pode devolver registros válidos junto com um erro (respostas parcialmente
	// inválidas); havendo registros, eles são usados. Os registros vêm ordenados por preferência.
	records, err := s.resolver.LookupMX(ctx, emailDomain)
	if len(records) == 0 {
		fields := logrus.Fields{"domain": emailDomain}
		if err != nil {
			fields["error"] = err.Error()
		}
		logrus.WithFields(fields).Warn("classifying: não foi possível obter registros MX")
		return domain.ProviderUnknown
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": emailDomain,
			"error":  err.Error(),
		}).Debug("classifying: consulta MX retornou registros com erro")
	}

	host := strings.ToLower(records[0].Host)

	switch {
	case strings.Contains(host, "google"):
		return domain.ProviderGoogle
	case strings.Contains(host, "outlook"):
		return domain.ProviderOutlook
	default:
		return domain.ProviderEnterprise
	}
}

func extractDomain(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 {
		return ""
	}

	return strings.TrimSpace(email[idx+1:])
}
