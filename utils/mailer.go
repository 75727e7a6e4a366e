package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/cskyle2026/Diabetes/localization"
	"github.com/cskyle2026/Diabetes/models"
)

var sesClient *ses.Client

// InitSES sets up the shared SES client. Every email in this app is
// best-effort, so a missing AWS setup only logs and disables sending.
func InitSES() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Printf("SES disabled: %v", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return errors.New("ses client not configured")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a new account in its chosen language.
func SendWelcomeEmail(to, name string, lang models.LanguageCode) error {
	subject := localization.Translate(lang, "welcome_subject")
	body := fmt.Sprintf(localization.Translate(lang, "welcome_body"), name)
	return sendEmail(to, subject, body)
}
