// cmd/inboxcheck/main.go sends one test inquiry to the configured contact inbox
package main

import (
	"context"
	"flag"

	"github.com/hooked-store/storefront/internal/config"
	"github.com/hooked-store/storefront/internal/domain/contact"
	"github.com/hooked-store/storefront/internal/pkg/inbox"
	"github.com/hooked-store/storefront/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	name := flag.String("name", "Inbox Check", "sender name")
	email := flag.String("email", "", "reply-to address")
	message := flag.String("message", "Test inquiry from the storefront backend", "message body")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.New(cfg)

	client := inbox.NewClient(inbox.Options{
		Endpoint: cfg.Contact.Endpoint,
		Timeout:  cfg.Contact.Timeout,
	})
	service := contact.NewService(client, log)

	result, err := service.Submit(context.Background(), contact.Inquiry{
		Name:    *name,
		Email:   *email,
		Message: *message,
	})
	if err != nil {
		log.WithField("endpoint", cfg.Contact.Endpoint).Fatalf("%s (%v)", result.Status, err)
	}

	log.Infof("✅ %s", result.Status)
}
