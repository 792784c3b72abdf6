package policy

import (
	"sort"
	"strings"
	"time"

	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeThreshold = errs.Kind("cancellation thresholds must not be negative", errs.ErrInvalidArgument)
	ErrThresholdOrder    = errs.Kind("standard threshold must be at least the late threshold", errs.ErrInvalidArgument)
	ErrNegativeFee       = errs.Kind("late fee must not be negative", errs.ErrInvalidArgument)
	ErrNegativeGrace     = errs.Kind("grace allowance must not be negative", errs.ErrInvalidArgument)
	ErrEmptyText         = errs.Kind("policy text is required", errs.ErrInvalidArgument)
	ErrFeeNotConfigured  = errs.Kind("no late fee configured for currency", errs.ErrPolicyUnavailable)
)

// Draft is the input for a new policy version.
type Draft struct {
	StandardCancellationHours int32
	LateCancellationHours     int32
	LateFees                  map[string]decimal.Decimal
	GraceCancellationsAllowed int32
	Text                      string
}

// Policy is an immutable cancellation policy version.
type Policy struct {
	version                   int32
	standardCancellationHours int32
	lateCancellationHours     int32
	lateFees                  map[money.Currency]decimal.Decimal
	graceCancellationsAllowed int32
	isActive                  bool
	text                      string
	createdAt                 time.Time
}

// NewPolicy validates a draft. The version is assigned by the store on publish.
func NewPolicy(d Draft, now time.Time) (*Policy, error) {
	if d.StandardCancellationHours < 0 || d.LateCancellationHours < 0 {
		return nil, ErrNegativeThreshold
	}
	if d.StandardCancellationHours < d.LateCancellationHours {
		return nil, ErrThresholdOrder
	}
	if d.GraceCancellationsAllowed < 0 {
		return nil, ErrNegativeGrace
	}
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	fees := make(map[money.Currency]decimal.Decimal, len(d.LateFees))
	for code, fee := range d.LateFees {
		currency, err := money.ParseCurrency(code)
		if err != nil {
			return nil, err
		}
		if fee.IsNegative() {
			return nil, ErrNegativeFee
		}
		fees[currency] = fee.Round(money.Scale)
	}

	return &Policy{
		standardCancellationHours: d.StandardCancellationHours,
		lateCancellationHours:     d.LateCancellationHours,
		lateFees:                  fees,
		graceCancellationsAllowed: d.GraceCancellationsAllowed,
		isActive:                  true,
		text:                      text,
		createdAt:                 now,
	}, nil
}

func ReconstructPolicy(
	version, standardHours, lateHours int32,
	lateFees map[money.Currency]decimal.Decimal,
	graceAllowed int32,
	isActive bool,
	text string,
	createdAt time.Time,
) *Policy {
	return &Policy{
		version:                   version,
		standardCancellationHours: standardHours,
		lateCancellationHours:     lateHours,
		lateFees:                  lateFees,
		graceCancellationsAllowed: graceAllowed,
		isActive:                  isActive,
		text:                      text,
		createdAt:                 createdAt,
	}
}

// LateFee fails rather than defaulting when the currency has no configured fee.
func (p *Policy) LateFee(currency money.Currency) (decimal.Decimal, error) {
	fee, ok := p.lateFees[currency]
	if !ok {
		return decimal.Zero, errs.Wrapf(ErrFeeNotConfigured, "currency %s, policy v%d charges %v", currency, p.version, p.Currencies())
	}
	return fee, nil
}

func (p *Policy) LateFees() map[money.Currency]decimal.Decimal {
	out := make(map[money.Currency]decimal.Decimal, len(p.lateFees))
	for k, v := range p.lateFees {
		out[k] = v
	}
	return out
}

// Currencies returns the fee currencies in stable order.
func (p *Policy) Currencies() []money.Currency {
	out := make([]money.Currency, 0, len(p.lateFees))
	for k := range p.lateFees {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (p *Policy) Version() int32                   { return p.version }
func (p *Policy) StandardCancellationHours() int32 { return p.standardCancellationHours }
func (p *Policy) LateCancellationHours() int32     { return p.lateCancellationHours }
func (p *Policy) GraceCancellationsAllowed() int32 { return p.graceCancellationsAllowed }
func (p *Policy) IsActive() bool                   { return p.isActive }
func (p *Policy) Text() string                     { return p.text }
func (p *Policy) CreatedAt() time.Time             { return p.createdAt }
