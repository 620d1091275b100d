// Package notify is the notification gateway: templated email through SES and
// text messages through SNS.
//
// The public Send* methods never return an error. Failures are classified,
// logged and counted, and reported to the caller as false.
package notify

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"

	"photobooking/internal/gateway"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	charset = "UTF-8"
)

// EmailAPI is the subset of the SES v2 client used here.
type EmailAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SMSAPI is the subset of the SNS client used here.
type SMSAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Outcomes receives one call per attempted delivery.
type Outcomes interface {
	NotificationSent(channel string, ok bool)
}

type nopOutcomes struct{}

func (nopOutcomes) NotificationSent(string, bool) {}

type Options struct {
	From        string
	CountryCode string
	Observer    gateway.Observer
	Outcomes    Outcomes
}

type Notifier struct {
	email       EmailAPI
	sms         SMSAPI
	from        string
	countryCode string
	observer    gateway.Observer
	outcomes    Outcomes
	log         *zap.Logger
}

func New(email EmailAPI, sms SMSAPI, opts Options, log *zap.Logger) (*Notifier, error) {
	const op = "notify.New"
	if email == nil || sms == nil {
		return nil, gateway.Configuration(op, "email or sms client is not configured", nil)
	}
	if strings.TrimSpace(opts.From) == "" {
		return nil, gateway.Configuration(op, "sender address is empty", nil)
	}
	if opts.CountryCode == "" {
		opts.CountryCode = DefaultCountryCode
	}
	if opts.Observer == nil {
		opts.Observer = gateway.NopObserver{}
	}
	if opts.Outcomes == nil {
		opts.Outcomes = nopOutcomes{}
	}
	return &Notifier{
		email:       email,
		sms:         sms,
		from:        opts.From,
		countryCode: opts.CountryCode,
		observer:    opts.Observer,
		outcomes:    opts.Outcomes,
		log:         log.With(zap.String("component", "notify")),
	}, nil
}

// SendBookingConfirmation emails the client a confirmation of their booking.
func (n *Notifier) SendBookingConfirmation(ctx context.Context, b BookingConfirmation) bool {
	msg := renderConfirmation(b)
	err := n.sendEmail(ctx, "notify.SendBookingConfirmation", b.ClientEmail, msg)
	return n.report(ChannelEmail, "booking confirmation", err, zap.String("to", b.ClientEmail))
}

// SendGalleryReady emails the client that their gallery can be viewed.
func (n *Notifier) SendGalleryReady(ctx context.Context, g GalleryReady) bool {
	msg := renderGalleryReady(g)
	err := n.sendEmail(ctx, "notify.SendGalleryReady", g.ClientEmail, msg)
	return n.report(ChannelEmail, "gallery ready", err,
		zap.String("to", g.ClientEmail), zap.String("event_id", g.EventID))
}

// SendSMS sends a transactional text message. Local numbers get the
// configured country code.
func (n *Notifier) SendSMS(ctx context.Context, phone, message string) bool {
	const op = "notify.SendSMS"
	to := NormalizePhone(n.countryCode, phone)

	var err *gateway.Error
	if to == "" {
		err = gateway.NotFound(op, "recipient phone number is empty", nil)
	} else if _, sendErr := n.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	}); sendErr != nil {
		err = gateway.ClassifyAWS(op, sendErr)
	}

	return n.report(ChannelSMS, "sms", err, zap.String("to", to))
}

func (n *Notifier) sendEmail(ctx context.Context, op, to string, msg rendered) *gateway.Error {
	if strings.TrimSpace(to) == "" {
		return gateway.NotFound(op, "recipient address is empty", nil)
	}

	_, err := n.email.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from),
		Destination:      &sestypes.Destination{ToAddresses: []string{to}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(msg.HTML), Charset: aws.String(charset)},
					Text: &sestypes.Content{Data: aws.String(msg.Text), Charset: aws.String(charset)},
				},
			},
		},
	})
	if err != nil {
		return gateway.ClassifyAWS(op, err)
	}
	return nil
}

func (n *Notifier) report(channel, what string, err *gateway.Error, fields ...zap.Field) bool {
	n.outcomes.NotificationSent(channel, err == nil)
	if err != nil {
		n.observer.GatewayError(channel, err.Kind)
		fields = append(fields, zap.String("kind", string(err.Kind)), zap.Error(err))
		n.log.Error(what+" not sent", fields...)
		return false
	}
	n.log.Info(what+" sent", fields...)
	return true
}
