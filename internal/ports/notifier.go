package ports

import "github.com/aalvaropc/hostexpand/internal/domain"

// Notifier observes advisory diagnostics from classification. Notices
// never alter pipeline output; implementations decide how (or whether)
// to surface them to a human.
type Notifier interface {
	Coerced(spec domain.AddressSpec)
	Rejected(spec domain.AddressSpec)
}
