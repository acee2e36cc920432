package external

import (
	"context"
	"log/slog"

	"dateminder/internal/types"
)

// StubEmailProvider implements EmailProvider by logging the digest instead of
// calling EmailJS. Used when config.IsTestMode is true, so a run can be
// rehearsed against real store data without emailing anyone.
type StubEmailProvider struct {
	logger *slog.Logger
}

// NewStubEmailProvider creates a new StubEmailProvider.
func NewStubEmailProvider(logger *slog.Logger) *StubEmailProvider {
	return &StubEmailProvider{logger: logger}
}

func (s *StubEmailProvider) Send(ctx context.Context, input types.SendInput) error {
	s.logger.InfoContext(ctx, "stub: Send called",
		"to", input.To,
		"from_name", input.FromName,
		"event_list", input.EventList,
	)
	return nil
}

// Compile-time assertion that StubEmailProvider satisfies EmailProvider.
var _ EmailProvider = (*StubEmailProvider)(nil)
