package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"time"

	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/usecase/commands"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const RoutingKeyPurchaseCompleted = "purchase.completed"

var errMalformedPurchase = errs.Kind("malformed purchase message", errs.ErrInvalidArgument)

var validate = newValidator()

// newValidator lets decimal amounts take numeric bounds like any float field.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

type DeliverySource interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// PurchaseMessage is the purchase.completed payload published by the payment service.
// Bounds mirror the ledger columns. A missing currency falls back to the configured default.
type PurchaseMessage struct {
	PurchaseReference string          `json:"purchaseReference" validate:"required,max=255"`
	ClientID          uuid.UUID       `json:"clientId" validate:"required"`
	PackageSize       *int            `json:"packageSize,omitempty" validate:"omitempty,gt=0,lte=2147483647"`
	SessionTypeID     *uuid.UUID      `json:"sessionTypeId,omitempty"`
	Amount            decimal.Decimal `json:"amount" validate:"gte=0,lte=9999999999.99"`
	Currency          string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	CompletedAt       time.Time       `json:"completedAt"`
	ExpiresAt         *time.Time      `json:"expiresAt,omitempty"`
}

func (m PurchaseMessage) ToEvent() commands.PurchaseEvent {
	return commands.PurchaseEvent{
		PurchaseReference: m.PurchaseReference,
		ClientID:          m.ClientID,
		PackageSize:       m.PackageSize,
		SessionTypeID:     m.SessionTypeID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		CompletedAt:       m.CompletedAt,
		ExpiresAt:         m.ExpiresAt,
	}
}

func DecodePurchase(body []byte) (commands.PurchaseEvent, error) {
	var m PurchaseMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return commands.PurchaseEvent{}, errs.WithCause(errMalformedPurchase, err)
	}
	if err := validate.Struct(m); err != nil {
		return commands.PurchaseEvent{}, errs.WithCause(errMalformedPurchase, err)
	}
	return m.ToEvent(), nil
}

// PurchaseConsumer feeds purchase.completed deliveries to the issuance listener.
// Invalid messages are dead-lettered; anything else is requeued.
type PurchaseConsumer struct {
	source   DeliverySource
	issuance commands.IssuanceCommands
}

func NewPurchaseConsumer(source DeliverySource, issuance commands.IssuanceCommands) *PurchaseConsumer {
	return &PurchaseConsumer{source: source, issuance: issuance}
}

// Run starts consuming in the background until ctx is cancelled.
func (pc *PurchaseConsumer) Run(ctx context.Context) error {
	msgs, err := pc.source.Deliveries(ctx)
	if err != nil {
		return errs.Wrap(err, "start purchase consumer")
	}
	go func() {
		for d := range msgs {
			pc.Handle(ctx, d)
		}
		slog.Info("purchase consumer stopped")
	}()
	return nil
}

func (pc *PurchaseConsumer) Handle(ctx context.Context, d amqp.Delivery) {
	if d.RoutingKey != RoutingKeyPurchaseCompleted {
		_ = d.Ack(false)
		return
	}

	ev, err := DecodePurchase(d.Body)
	if err != nil {
		slog.Warn("dead-lettering purchase message", "error", err.Error())
		_ = d.Nack(false, false)
		return
	}

	res, err := pc.issuance.OnPurchaseCompleted(ctx, ev)
	if err != nil {
		if permanent(err) {
			slog.Warn("dead-lettering invalid purchase",
				"purchase_reference", ev.PurchaseReference,
				"error", err.Error())
			_ = d.Nack(false, false)
			return
		}
		slog.Error("purchase issuance failed, requeueing",
			"purchase_reference", ev.PurchaseReference,
			"error", err.Error())
		_ = d.Nack(false, true)
		return
	}

	slog.Debug("purchase processed",
		"purchase_reference", ev.PurchaseReference,
		"grant_id", res.Grant.ID().String(),
		"replayed", res.Replayed)
	_ = d.Ack(false)
}

func permanent(err error) bool {
	switch errs.KindOf(err) {
	case errs.ErrInvalidArgument, errs.ErrInvalidState:
		return true
	default:
		return false
	}
}
