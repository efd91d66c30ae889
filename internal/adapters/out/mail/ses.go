package mail

import (
	"context"
	"fmt"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charset = "UTF-8"

// SESClient is the part of the SES v2 API client the sender uses.
type SESClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender delivers emails through Amazon SES.
type SESSender struct {
	client SESClient
}

// NewSESSenderFromRegion loads the default AWS credential chain for region.
func NewSESSenderFromRegion(ctx context.Context, region string) (*SESSender, error) {
	if region == "" {
		return nil, errs.NewValueIsRequiredError("ses region")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return NewSESSender(sesv2.NewFromConfig(cfg)), nil
}

func NewSESSender(client SESClient) *SESSender {
	return &SESSender{client: client}
}

func (s *SESSender) Send(ctx context.Context, email ports.Email) error {
	if len(email.To) == 0 {
		return errs.NewValueIsRequiredError("recipients")
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(email.From),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(email.HTMLBody), Charset: aws.String(charset)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
