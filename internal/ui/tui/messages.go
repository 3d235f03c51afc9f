package tui

import "github.com/aalvaropc/hostexpand/internal/domain"

type expandDoneMsg struct {
	sum     domain.Summary
	notices []string
	err     error
}
